package views

import (
	"fmt"
	"io"
	"strings"
)

// Stack is the list of technologies shown on the welcome screen.
var Stack = []string{
	"React 18 + TypeScript",
	"Tailwind CSS",
	"Python 3.11 + FastAPI",
	"LangChain + OpenAI",
	"SQLite Database",
	"Azure App Service",
}

var setupSteps = []string{
	"Virtual environment created",
	"Dependencies installed",
	"Database initialized",
	"Deployed to Azure",
}

type WelcomeInfo struct {
	UserName    string
	ProjectName string
	GithubURL   string
}

// Welcome is the static setup summary.
type Welcome struct {
	info WelcomeInfo
}

func NewWelcome(info WelcomeInfo) *Welcome {
	return &Welcome{info: info}
}

func (v *Welcome) Render(w io.Writer) error {
	var b strings.Builder
	if err := RenderTitle(&b, "Boot_Lang Setup Complete!"); err != nil {
		return err
	}
	fmt.Fprintf(&b, "\nUser:    %s\nProject: %s\n\n", OrDash(v.info.UserName), OrDash(v.info.ProjectName))

	b.WriteString("Setup:\n")
	for _, s := range setupSteps {
		fmt.Fprintf(&b, "  [x] %s\n", s)
	}

	b.WriteString("\nStack:\n")
	for _, s := range Stack {
		fmt.Fprintf(&b, "  - %s\n", s)
	}

	if v.info.GithubURL != "" {
		fmt.Fprintf(&b, "\nRepository: %s\n", v.info.GithubURL)
	}
	b.WriteString("\nType 'help' to start building.\n")

	_, err := io.WriteString(w, b.String())
	return err
}
