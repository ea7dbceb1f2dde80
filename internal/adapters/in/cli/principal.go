package cli

import (
	"encoding/xml"
	"strings"

	"principal-passwd/internal/app/ports"
)

// Principal is the account fragment emitted by the tool, formatted as a
// ZCML <principal/> element.
type Principal struct {
	ID          string
	Title       string
	Login       string
	Password    string
	Description string
	ManagerName string
}

func (p Principal) Lines() []string {
	lines := []string{
		"  <principal",
		"    id=" + quoteAttr(p.ID),
		"    title=" + quoteAttr(p.Title),
		"    login=" + quoteAttr(p.Login),
		"    password=" + quoteAttr(p.Password),
	}
	if p.Description != "" {
		lines = append(lines, "    description="+quoteAttr(p.Description))
	}
	// Plain Text is the consumer-side default and is left implicit.
	if p.ManagerName != ports.SchemePlainText {
		lines = append(lines, "    password_manager="+quoteAttr(p.ManagerName))
	}
	return append(lines, "    />")
}

func (p Principal) String() string {
	return strings.Join(p.Lines(), "\n")
}

func quoteAttr(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return `"` + b.String() + `"`
}
