package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/planforge/cli/cmd/planforge/internal/cmdtree"
	"github.com/planforge/cli/internal/config"
	"github.com/planforge/cli/internal/constants"
	"github.com/planforge/cli/internal/errs"
	"github.com/planforge/cli/internal/installation/storage"
	"github.com/planforge/cli/internal/locale"
	"github.com/planforge/cli/internal/logging"
	"github.com/planforge/cli/internal/output"
	"github.com/planforge/cli/internal/primer"
)

func main() {
	os.Exit(run())
}

func run() int {
	if dir, err := storage.AppDataPath(); err == nil {
		logging.SetHandler(logging.NewFileHandler(dir))
	}
	defer logging.Close()

	if lvl := os.Getenv(constants.LogEnvVarName); lvl != "" {
		if err := logging.SetMinimalLevelByName(lvl); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid %s: %v\n", constants.LogEnvVarName, err)
		}
	}

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not initialize config: %s\n", errs.JoinMessage(err))
		return 1
	}
	defer func() {
		if err := cfg.Close(); err != nil {
			logging.Error("Could not close config: %v", err)
		}
	}()

	// The outputer has to exist before the command tree parses anything, so
	// the output flag is read straight from the arguments.
	out, err := output.New(parseOutputFlag(os.Args), &output.Config{
		OutWriter: os.Stdout,
		ErrWriter: os.Stderr,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, locale.Tr("err_main_outputer", errs.JoinMessage(err)))
		return 1
	}

	prime := primer.New(out, cfg)

	if err := cmdtree.New(prime).Execute(os.Args[1:]); err != nil {
		logging.Debug("Command failed: %s", errs.JoinMessage(err))

		out.Error(errorMessage(err))
		for _, unpacked := range errs.Unpack(err) {
			if tipper, ok := unpacked.(errs.ErrorTipper); ok {
				for _, tip := range tipper.ErrorTips() {
					out.Notice(tip)
				}
			}
		}
		return 1
	}

	return 0
}

// errorMessage picks the message shown to the user: the joined user-facing or
// localized messages when there are any, the raw error chain otherwise.
func errorMessage(err error) string {
	var messages []string
	for _, unpacked := range errs.Unpack(err) {
		if userFacing, ok := unpacked.(errs.UserFacingError); ok {
			messages = append(messages, userFacing.UserError())
		}
	}
	if len(messages) > 0 {
		return strings.Join(messages, "\n")
	}
	if locale.HasError(err) {
		return locale.JoinedErrorMessage(err)
	}
	return errs.JoinMessage(err)
}

// parseOutputFlag reads the value of --output/-o without cobra's help, since
// cobra only runs after the outputer exists.
func parseOutputFlag(args []string) string {
	for i, arg := range args {
		if arg == "--output" || arg == "-o" {
			if i+1 < len(args) {
				return args[i+1]
			}
			return ""
		}
		if strings.HasPrefix(arg, "--output=") {
			return strings.TrimPrefix(arg, "--output=")
		}
		if strings.HasPrefix(arg, "-o=") {
			return strings.TrimPrefix(arg, "-o=")
		}
	}
	return ""
}
