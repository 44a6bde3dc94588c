package utils

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	eperrors "github.com/FanaticExplorer/EmojiesParser/errors"
)

const chromeExecEnvKey = "CHROME_EXECUTABLE"

func chromeExecCandidates() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			`C:\Program Files\Google\Chrome\Application\chrome.exe`,
			`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
		}
	case "darwin":
		return []string{
			"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
		}
	default:
		return []string{
			"google-chrome",
			"google-chrome-stable",
			"chromium",
			"chromium-browser",
		}
	}
}

// GetChromeExecPath returns the path to the Chrome/Chromium executable,
// preferring the CHROME_EXECUTABLE environment variable when set.
func GetChromeExecPath() (string, error) {
	if envPath := os.Getenv(chromeExecEnvKey); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
	}

	for _, candidate := range chromeExecCandidates() {
		if execPath, err := exec.LookPath(candidate); err == nil {
			return execPath, nil
		}
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf(
		"error %d: no Chrome/Chromium executable found",
		eperrors.OS_ERROR,
	)
}
