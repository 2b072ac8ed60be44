// Package cli contains the cobra command tree of jobtrack.
package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/example/jobtrack/internal/ctxutil"
)

// ActorCLI identifies changes made from the command line in the history log.
const ActorCLI = "cli"

func cliContext() context.Context {
	return ctxutil.WithActorID(context.Background(), ActorCLI)
}

// parseID parses a positive application ID argument.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid application id %q: must be a positive integer", raw)
	}
	return id, nil
}
