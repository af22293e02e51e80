package platform

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSFreeBSD = "freebsd"
	OSAndroid = "android"
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	WindowsCmdFlag = "/c"
	AndroidCommand = "am"
)

// ErrUnsupportedOS is returned when no default handler is known for the OS.
var ErrUnsupportedOS = errors.New("unsupported operating system")

// ErrInvalidURL is returned for targets that are not absolute URLs.
var ErrInvalidURL = errors.New("invalid url")

// OpenURL hands target to the OS default handler without waiting for it
// to exit.
func OpenURL(target string) error {
	if _, err := ParseURL(target); err != nil {
		return err
	}
	name, args, err := openCommand(runtime.GOOS, target)
	if err != nil {
		return err
	}

	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	// Reap the child in the background.
	go func() { _ = cmd.Wait() }()
	return nil
}

// ParseURL validates target as an absolute URL.
func ParseURL(target string) (*url.URL, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme == "" {
		return nil, fmt.Errorf("%w: %q has no scheme", ErrInvalidURL, target)
	}
	return u, nil
}

func openCommand(goos, target string) (string, []string, error) {
	switch goos {
	case OSDarwin:
		return OpenCommand, []string{target}, nil
	case OSWindows:
		return CmdCommand, []string{WindowsCmdFlag, StartCommand, "", target}, nil
	case OSLinux, OSFreeBSD:
		return XDGOpenCommand, []string{target}, nil
	case OSAndroid:
		return AndroidCommand, []string{"start", "-a", "android.intent.action.VIEW", "-d", target}, nil
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, goos)
	}
}
