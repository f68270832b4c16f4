package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// errAborted is returned when the user declines a safety confirmation.
var errAborted = errors.New("aborted by user")

// confirmYes prompts the user and accepts only the literal answer "yes".
func confirmYes(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}

// confirmAutoFix warns before a run that overwrites remote configuration
// files without per-drift confirmation.
func confirmAutoFix() error {
	fmt.Println()
	fmt.Println(dangerStyle.Render("🚨  DANGER ZONE: AUTO-FIX ENABLED  🚨"))
	if yesFlag {
		fmt.Println("✓ Auto-confirmed via --yes flag")
		return nil
	}

	fmt.Println("You are about to overwrite configuration files on remote servers without confirmation.")
	if !confirmYes(warnStyle.Render("Type 'yes' to confirm and proceed: ")) {
		fmt.Println(dangerStyle.Render("❌ Aborted by user."))
		return errAborted
	}
	return nil
}

// confirmReportLeak warns that a generated report will contain decrypted
// content in plain text. Only relevant when a vault password is in play.
func confirmReportLeak() error {
	if vaultPassFlag == "" {
		return nil
	}

	fmt.Println()
	fmt.Println(warnStyle.Render("⚠️  SECURITY WARNING: POTENTIAL SECRET LEAK  ⚠️"))
	fmt.Println("You are generating a report containing diffs of encrypted files.")
	fmt.Println("Secrets will appear IN PLAIN TEXT in 'report.html'.")
	if yesFlag {
		return nil
	}

	if !confirmYes(warnStyle.Render("Type 'yes' to confirm you understand the risk: ")) {
		fmt.Println(dangerStyle.Render("❌ Aborted by user."))
		return errAborted
	}
	return nil
}
