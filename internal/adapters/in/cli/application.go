package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/term"

	"principal-passwd/internal/app/config"
	"principal-passwd/internal/app/ports"
)

const (
	idTitle          = "Please choose an id for the principal."
	titleTitle       = "Please choose a title for the principal."
	loginTitle       = "Please choose a login for the principal."
	passwordTitle    = "Please provide a password for the principal."
	descriptionTitle = "Please provide an optional description for the principal."
)

// Application is the interactive principal tool: it prompts for account
// details, encodes the password with a scheme picked from the registry and
// emits an XML principal fragment.
type Application struct {
	cfg      config.ToolConfig
	registry ports.SchemeRegistry

	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer

	// Replaceable for tests.
	readPassword func(prompt string) (string, error)
	newID        func() string
}

func NewApplication(cfg config.ToolConfig, registry ports.SchemeRegistry) *Application {
	return &Application{
		cfg:          cfg,
		registry:     registry,
		in:           bufio.NewReader(os.Stdin),
		out:          os.Stdout,
		errOut:       os.Stderr,
		readPassword: readPasswordTerminal,
		newID:        uuid.NewString,
	}
}

// Run prompts for a principal and writes the fragment to dest. A nil dest
// means stdout, preceded by the banner.
func (a *Application) Run(dest io.Writer) error {
	principal, err := a.getPrincipal()
	if err != nil {
		return err
	}
	if dest == nil {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, a.cfg.Banner)
		dest = a.out
	}
	_, err = fmt.Fprintln(dest, principal.String())
	return err
}

func (a *Application) getPrincipal() (Principal, error) {
	generated := a.newID()
	id, err := a.getValue(idTitle, fmt.Sprintf("Id [%s]: ", generated), "")
	if err != nil {
		return Principal{}, err
	}
	if id == "" {
		id = generated
	}
	title, err := a.getValue(titleTitle, "Title: ", "Title may not be empty")
	if err != nil {
		return Principal{}, err
	}
	login, err := a.getValue(loginTitle, "Login: ", "Login may not be empty")
	if err != nil {
		return Principal{}, err
	}
	managerName, manager, err := a.getManager()
	if err != nil {
		return Principal{}, err
	}
	password, err := a.getPassword()
	if err != nil {
		return Principal{}, err
	}
	description, err := a.getValue(descriptionTitle, "Description: ", "")
	if err != nil {
		return Principal{}, err
	}

	encoded, err := manager.Encode(password, nil)
	if err != nil {
		return Principal{}, fmt.Errorf("cannot encode password with %s: %w", managerName, err)
	}
	return Principal{
		ID:          id,
		Title:       title,
		Login:       login,
		Password:    encoded,
		Description: description,
		ManagerName: managerName,
	}, nil
}

// getValue prompts until a value is entered; an empty errMsg permits empty
// input.
func (a *Application) getValue(title, prompt, errMsg string) (string, error) {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, title)
	for {
		fmt.Fprint(a.out, prompt)
		line, err := a.in.ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		value := strings.TrimSpace(line)
		if value == "" && errMsg != "" {
			fmt.Fprintln(a.errOut, errMsg)
			continue
		}
		return value, nil
	}
}

func (a *Application) getManager() (string, ports.PasswordManager, error) {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Password manager:")
	fmt.Fprintln(a.out)
	entries := a.registry.Entries()
	def := 0
	for i, e := range entries {
		fmt.Fprintf(a.out, "% d. %s\n", i+1, e.Name)
		switch {
		case a.cfg.DefaultManager != "" && e.Name == a.cfg.DefaultManager:
			def = i
		case a.cfg.DefaultManager == "" && e.Name == ports.SchemeBCrypt:
			def = i
		case a.cfg.DefaultManager == "" && e.Name == ports.SchemeSSHA && def == 0:
			def = i
		}
	}
	fmt.Fprintln(a.out)
	for {
		fmt.Fprintf(a.out, "Password Manager Number [%d]: ", def+1)
		line, err := a.in.ReadString('\n')
		if err != nil && line == "" {
			return "", nil, err
		}
		choice := strings.TrimSpace(line)
		index := def
		if choice != "" {
			n, convErr := strconv.Atoi(choice)
			if convErr != nil || n < 1 || n > len(entries) {
				fmt.Fprintln(a.errOut, "You must select a password manager")
				continue
			}
			index = n - 1
		}
		fmt.Fprintf(a.out, "%s password manager selected\n", entries[index].Name)
		return entries[index].Name, entries[index].Manager, nil
	}
}

func (a *Application) getPassword() (string, error) {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, passwordTitle)
	var password string
	for {
		pw, err := a.readPassword("Password: ")
		if err != nil {
			return "", err
		}
		if pw == "" {
			fmt.Fprintln(a.errOut, "Password may not be empty")
			continue
		}
		if strings.TrimSpace(pw) != pw || len(strings.Fields(pw)) != 1 {
			fmt.Fprintln(a.errOut, "Password may not contain spaces")
			continue
		}
		password = pw
		break
	}
	again, err := a.readPassword("Verify password: ")
	if err != nil {
		return "", err
	}
	if again != password {
		return "", fmt.Errorf("%w: password not verified", ports.ErrInvalidInput)
	}
	return password, nil
}

func readPasswordTerminal(prompt string) (string, error) {
	fmt.Print(prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(b), nil
}
