package tui

import "github.com/claritypath/themedeck/internal/tui/components"

// The preview renders a fixed mock practice dashboard.

func sampleStats() []components.Stat {
	return []components.Stat{
		{Icon: "👥", Label: "Active Clients", Value: "24", Change: "+3 this month"},
		{Icon: "📅", Label: "Sessions Today", Value: "6", Change: "2 remaining"},
		{Icon: "📈", Label: "Course Progress", Value: "78%", Change: "+12% this week"},
		{Icon: "📋", Label: "Assessments", Value: "12", Change: "3 pending"},
	}
}

func sampleNav() []components.NavItem {
	return []components.NavItem{
		{Icon: "🏠", Label: "Dashboard", Active: true},
		{Icon: "👥", Label: "Clients"},
		{Icon: "📅", Label: "Schedule"},
		{Icon: "📚", Label: "Resources"},
	}
}

func sampleFields() []components.Field {
	return []components.Field{
		{Label: "Client Name", Placeholder: "Enter name...", Focused: true},
		{Label: "Session Type", Value: "Individual Therapy"},
		{Label: "Notes", Placeholder: "Session notes..."},
	}
}

func sampleProgress() []components.ProgressItem {
	return []components.ProgressItem{
		{Label: "Course Completion", Value: 78, Role: components.RolePrimary},
		{Label: "Skill Assessment", Value: 92, Role: components.RoleSecondary},
		{Label: "CEU Credits", Value: 45, Role: components.RoleAccent},
		{Label: "Certification Progress", Value: 60, Role: components.RoleSuccess},
	}
}

func sampleSkills() []components.ProgressItem {
	return []components.ProgressItem{
		{Label: "Clinical", Value: 92, Role: components.RolePrimary},
		{Label: "Ethics", Value: 95, Role: components.RoleSecondary},
		{Label: "Comm.", Value: 88, Role: components.RoleAccent},
		{Label: "Docs", Value: 76, Role: components.RoleSuccess},
	}
}

func sampleSessions() []components.SessionRow {
	return []components.SessionRow{
		{Client: "Sarah M.", Type: "Individual", Status: "Completed"},
		{Client: "James K.", Type: "Couples", Status: "In Progress"},
		{Client: "Emily R.", Type: "Individual", Status: "Scheduled"},
	}
}

func sampleActionCards() []components.ActionCard {
	return []components.ActionCard{
		{Title: "Start Assessment", Description: "Complete your professional skills evaluation", CTA: "Begin Now", Role: components.RolePrimary},
		{Title: "Learning Path", Description: "Continue your certification coursework", CTA: "Resume", Role: components.RoleSecondary},
		{Title: "Book Supervision", Description: "Schedule your next supervision session", CTA: "Schedule", Role: components.RoleAccent},
	}
}

func sampleSwitches() []components.Toggle {
	return []components.Toggle{
		{Label: "Email Notifications", On: true},
		{Label: "Session Reminders", On: true},
		{Label: "Weekly Reports"},
	}
}

func sampleAgreements() []components.Toggle {
	return []components.Toggle{
		{Label: "Client confidentiality agreement", On: true},
		{Label: "Terms of service", On: true},
		{Label: "Privacy policy"},
	}
}
