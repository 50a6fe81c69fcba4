package display

import (
	"fmt"
	"os"

	"github.com/backmassage/snapdate/internal/logging"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if logging.Magenta != "" {
		fmt.Fprint(os.Stdout, "\033[1;95m")
	}
	fmt.Fprint(os.Stdout, ` ____                   ____        _
/ ___| _ __   __ _ _ __ |  _ \  __ _| |_ ___
\___ \| '_ \ / _`+"`"+` | '_ \| | | |/ _`+"`"+` | __/ _ \
 ___) | | | | (_| | |_) | |_| | (_| | ||  __/
|____/|_| |_|\__,_| .__/|____/ \__,_|\__\___|
                  |_|
`)
	if logging.Magenta != "" {
		fmt.Fprintln(os.Stdout, logging.NC)
	}
}
