package cli

import (
	"fmt"
	"os"
	"os/exec"
)

// ClearScreen shells out to clear and falls back to the ANSI erase sequence
// when the binary is missing (slim container images ship without it).
func ClearScreen() {
	cmd := exec.Command("clear")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		fmt.Print("\033[H\033[2J")
	}
}
