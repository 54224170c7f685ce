package interview

import "fmt"

const greetingTemplate = "Hello! Welcome to your interview for the %s position. To begin, can you tell me a little about yourself?"

const systemPromptTemplate = `You are an expert interviewer for a %s position. Your goal is to conduct a realistic and insightful interview. Ask one question at a time. Based on the user's answer, ask relevant and challenging follow-up questions. Keep your questions concise and professional.`

const scoringPromptTemplate = `You are an expert hiring manager. Based on the following interview transcript for a %s position, what is your overall rating of the candidate on a scale from 1 to 5?

**Transcript:**
---
%s
---

**Instructions:**
- Read the entire transcript carefully.
- Evaluate the candidate's skills, communication, and experience.
- Respond with ONLY a single digit number from 1 to 5. Do not include any other text, explanation, or punctuation. For example, if the rating is 4, your entire response should be just "4".`

const analysisPromptTemplate = `You are an expert hiring manager and communication coach. You have already given this candidate an overall score. Now, provide the detailed qualitative feedback.

**Interview Transcript for a %s position:**
---
%s
---

**Instructions for Analysis:**
Based on the transcript, write a constructive performance report in Markdown. DO NOT include an overall rating or score in your response. Focus only on the following sections:

1.  **Overall Summary:** A brief paragraph summarizing the candidate's performance.
2.  **Communication & Clarity:** Provide specific examples.
3.  **Demonstration of Skills (STAR Method):** Analyze their use of the STAR method.
4.  **Role-Specific Knowledge:** Assess their technical depth for the role.
5.  **Top 3 Actionable Recommendations:** Give concrete tips for improvement.`

func greetingText(role string) string {
	return fmt.Sprintf(greetingTemplate, role)
}

func systemPrompt(role string) string {
	return fmt.Sprintf(systemPromptTemplate, role)
}

func scoringPrompt(role, transcript string) string {
	return fmt.Sprintf(scoringPromptTemplate, role, transcript)
}

func analysisPrompt(role, transcript string) string {
	return fmt.Sprintf(analysisPromptTemplate, role, transcript)
}

// ratingDescription is the fixed descriptor block shown for a given score.
type ratingDescription struct {
	Title   string
	Details []string
}

var ratingDescriptions = map[int]ratingDescription{
	5: {
		Title: "5/5 – Excellent Candidate",
		Details: []string{
			"✅ Exceeds expectations in all key areas.",
			"✅ Highly skilled, experienced, and a perfect fit for the role.",
			"✅ Would bring immediate value to the team.",
			"→ **Strongly recommended for the position.**",
		},
	},
	4: {
		Title: "4/5 – Very Good Candidate",
		Details: []string{
			"✅ Meets all requirements and exceeds in some areas.",
			"✅ Has strong potential to grow into the role quickly.",
			"✅ A great addition to the team.",
			"→ **Recommended for the position.**",
		},
	},
	3: {
		Title: "3/5 – Good Candidate",
		Details: []string{
			"✅ Meets most requirements but has a few gaps.",
			"✅ Shows potential, with room for improvement.",
			"✅ May need some training or support initially.",
			"→ **Consider if top candidates are unavailable.**",
		},
	},
	2: {
		Title: "2/5 – Below Average Candidate",
		Details: []string{
			"⚠ Meets only some requirements.",
			"⚠ Lacks experience or skills in key areas.",
			"⚠ Would require significant development.",
			"→ **Not ideal; better suited for a different role.**",
		},
	},
	1: {
		Title: "1/5 – Poor Candidate",
		Details: []string{
			"❌ Does not meet basic requirements for the role.",
			"❌ Lacks relevant skills, experience, or qualifications.",
			"❌ Unlikely to succeed even with support.",
			"→ **Not recommended for the position.**",
		},
	},
}
