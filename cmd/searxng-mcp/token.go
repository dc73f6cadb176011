package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	pkgauth "github.com/matiasleandrokruk/searxng-mcp/pkg/auth"
)

// runToken prints a bearer token for the http transport.
func runToken(args []string, out, errOut io.Writer) int {
	fs := pflag.NewFlagSet("searxng-mcp token", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	secret := fs.String("secret", os.Getenv("SEARXNG_MCP_AUTH_SECRET"), "HS256 signing secret (default $SEARXNG_MCP_AUTH_SECRET)")
	subject := fs.String("subject", "mcp-client", "Token subject identifying the client")
	ttl := fs.String("ttl", "", "Token lifetime, as a duration (90m) or hours (24)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(out, "Usage:\n  searxng-mcp token [options]\n\nOptions:\n%s", fs.FlagUsages()) //nolint:errcheck
			return 0
		}
		fmt.Fprintln(errOut, err) //nolint:errcheck
		return 2
	}

	token, err := pkgauth.GenerateToken(*subject, []byte(*secret), pkgauth.ParseTTL(*ttl))
	if err != nil {
		fmt.Fprintln(errOut, err) //nolint:errcheck
		return 1
	}
	fmt.Fprintln(out, token) //nolint:errcheck
	return 0
}
