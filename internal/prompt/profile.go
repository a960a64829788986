package prompt

import (
	"fmt"
	"strings"

	"github.com/unicorn004/AlumniVerse/internal/model"
)

const NoProfileData = "No profile data available."

// FormatUserProfile renders a profile as the plain-text block embedded in the
// chatbot prompt. Empty fields and empty sections are left out.
func FormatUserProfile(profile *model.UserProfile) string {
	if profile == nil {
		return NoProfileData
	}

	var lines []string
	appendField := func(label, value string) {
		if value != "" {
			lines = append(lines, label+": "+value)
		}
	}

	appendField("Name", profile.FullName)
	appendField("Role", profile.Role)
	appendField("Bio", profile.Bio)
	appendField("Branch", profile.Branch)
	appendField("Graduation Year", profile.GraduationYear)
	appendField("Location", profile.Location)
	appendField("Job Title", profile.JobTitle)

	if len(profile.Skills) > 0 {
		lines = append(lines, "Skills: "+strings.Join(profile.Skills, ", "))
	}

	if len(profile.Experiences) > 0 {
		lines = append(lines, "\nWork Experience:")
		for _, exp := range profile.Experiences {
			lines = append(lines, formatExperience(exp))
		}
	}

	if len(profile.Achievements) > 0 {
		lines = append(lines, "\nAchievements:")
		for _, achievement := range profile.Achievements {
			entry := fmt.Sprintf("- %s (%s, %s)", achievement.Title, achievement.Type, achievement.Year)
			if achievement.Description != "" {
				entry += "\n  " + achievement.Description
			}
			lines = append(lines, entry)
		}
	}

	if len(profile.Education) > 0 {
		lines = append(lines, "\nEducation:")
		for _, edu := range profile.Education {
			lines = append(lines, fmt.Sprintf("- %s at %s", edu.Degree, edu.Institution))
		}
	}

	return strings.Join(lines, "\n")
}

func formatExperience(exp model.Experience) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- %s at %s", exp.JobTitle, exp.Company)

	if exp.StartYear != "" {
		fmt.Fprintf(&b, " (%s %s", exp.StartMonth, exp.StartYear)
		switch {
		case exp.EndYear != "":
			fmt.Fprintf(&b, " - %s %s", exp.EndMonth, exp.EndYear)
		case exp.IsCurrent:
			b.WriteString(" - Present")
		}
		b.WriteString(")")
	}

	if exp.Description != "" {
		b.WriteString("\n  ")
		b.WriteString(exp.Description)
	}
	return b.String()
}
