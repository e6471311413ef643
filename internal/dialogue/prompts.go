package dialogue

import (
	"strings"

	"github.com/jonathan/resume-builder-bot/internal/types"
)

// User-facing message text. Wording is part of the product surface; change
// with care.
const (
	welcomeMessage = "👋 Welcome to the Resume Builder Bot! I'll help you create a professional resume.\n\n" +
		"Let's get started with your information. Type /build to begin creating your resume."

	buildHintMessage = "Type /build to begin creating your resume."

	closingMessage = "Type /build to create another resume or /start to see the welcome message again."

	processingMessage = "⏳ Processing your resume... This may take a moment."

	documentCaption = "🎉 Here's your resume!"

	renderFailureMessage = "Sorry, there was an error generating your resume: %v\nPlease try again."

	jobsHeader = "💼 Based on your skills, here are some job recommendations:\n\n"

	namePrompt  = "What's your full name?"
	emailPrompt = "Great! What's your email address?"
	phonePrompt = "What's your phone number?"

	educationPrompt = "Please enter your education details in this format:\n\n" +
		"Degree, Institution, Year\n" +
		"Example: 'Bachelor of Science in Computer Science, MIT, 2020'\n\n" +
		"You can add multiple entries separated by a new line."

	experiencePrompt = "Please share your work experience in this format:\n\n" +
		"Position, Company, Duration, Description\n" +
		"Example: 'Software Engineer, Google, 2020-2022, Developed features for Google Maps'\n\n" +
		"You can add multiple entries separated by a new line."

	skillsPrompt = "What are your key skills? Please list them separated by commas.\n" +
		"Example: 'Python, JavaScript, Data Analysis, Project Management'"

	projectsPrompt = "Please list any notable projects (optional). Format:\n\n" +
		"Project Name, Description\n" +
		"Example: 'Personal Website, Developed a portfolio website using React'\n\n" +
		"You can add multiple entries separated by a new line or type 'skip' to continue."

	templatePrompt = "Please select a resume template:"
	formatPrompt   = "Please select the output format:"
)

// templateChoices presents the closed template set in its fixed order.
func templateChoices() []Choice {
	templates := types.Templates()
	choices := make([]Choice, len(templates))
	for i, template := range templates {
		id := string(template)
		choices[i] = Choice{ID: id, Label: capitalize(id)}
	}
	return choices
}

// formatChoices presents the closed output format set.
func formatChoices() []Choice {
	return []Choice{
		{ID: string(types.FormatPDF), Label: "PDF"},
		{ID: string(types.FormatDOCX), Label: "DOCX"},
	}
}

// promptFor returns the prompt reply for a collection step, including choice
// buttons for the two selection steps.
func promptFor(state State) Reply {
	switch state {
	case StateName:
		return Reply{Text: namePrompt}
	case StateEmail:
		return Reply{Text: emailPrompt}
	case StatePhone:
		return Reply{Text: phonePrompt}
	case StateEducation:
		return Reply{Text: educationPrompt}
	case StateExperience:
		return Reply{Text: experiencePrompt}
	case StateSkills:
		return Reply{Text: skillsPrompt}
	case StateProjects:
		return Reply{Text: projectsPrompt}
	case StateTemplate:
		return Reply{Text: templatePrompt, Choices: templateChoices()}
	case StateFormat:
		return Reply{Text: formatPrompt, Choices: formatChoices()}
	default:
		return Reply{Text: buildHintMessage}
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
