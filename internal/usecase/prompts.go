package usecase

import "fmt"

// Prompt templates sent to the completion provider. The question-generation
// prompt deliberately asks for flowing prose; the line filter in StartInterview
// keeps only lines that end in a question mark.

const questionPromptTemplate = `As an experienced HR specialist, create a welcoming interview script for this %s position.

Begin with a warm welcome greeting, then follow with conversational interview questions that naturally flow from one topic to another. Craft questions that reveal both technical capabilities and personality traits while maintaining a comfortable atmosphere.

The questions should:
- Start with an ice-breaker
- Blend naturally without numbering or bullet points
- Progress from general to more specific topics
- Include behavioral and situational scenarios
- Cover required technical skills
- Assess cultural fit and soft skills

Please write the questions as a flowing conversation rather than a numbered list.`

const evaluationPromptTemplate = `You are an HR specialist evaluating a candidate's response to an interview question.
Question: %s
Candidate's Answer: %s

Evaluate whether the answer is correct and offer constructive feedback.
- If the answer is correct, provide positive feedback like 'Great job!' and offer to move on to the next question.
- If the answer is incorrect, provide a polite explanation, guide them with constructive feedback, and provide the correct answer.

Strictly respond with a valid JSON object in this exact format and no additional text:

{
    "correct": <true_or_false>,
    "feedback": "<your_feedback_to_the_candidate>",
    "correct_answer": "<the_correct_answer_or_empty_string>",
    "follow_up_question": "<an_optional_follow_up_or_empty_string>"
}`

const scoringPromptTemplate = `You are an expert in evaluating resumes for Applicant Tracking Systems (ATS) and HR best practices. Your task is to assess the following resume against the job description provided.

Strictly respond with a valid JSON object and do not include any additional text or explanation.

For the evaluation, provide:
1. An ATS compatibility score (a precise numeric value between 0 and 100).
2. A best practices score (a precise numeric value between 0 and 100).
3. Concise and actionable improvement suggestions for enhancing the resume's alignment with ATS and HR best practices.
4. The improvement suggestions should be written in the same language as the resume text.

The response should be in this exact format:

{
    "ats_score": <numeric_score>,
    "best_practices_score": <numeric_score>,
    "suggestions": "<actionable_suggestions>"
}

Important instructions:
- The suggestions should be tailored to improve the resume for ATS systems (e.g., by including relevant keywords) and to meet HR best practices (e.g., formatting, clarity).
- Ensure the language of the suggestions matches the language of the resume text. Do not switch languages.
- Focus on providing clear, specific, and actionable suggestions to improve the resume.

Resume Text:
%s

Job Description:
%s`

func questionPrompt(jobDescription string) string {
	return fmt.Sprintf(questionPromptTemplate, jobDescription)
}

func evaluationPrompt(question, answer string) string {
	return fmt.Sprintf(evaluationPromptTemplate, question, answer)
}

func scoringPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(scoringPromptTemplate, resumeText, jobDescription)
}
