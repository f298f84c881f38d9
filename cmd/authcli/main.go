// Command authcli is a small terminal front end for a goAuthClient session.
//
// It keeps its credential profile in the standard config directory (override
// with GOAUTHCLIENT_PROFILE_DIR), so a login survives until logout or token
// expiry, exactly like a browser session would.
//
// Usage:
//
//	authcli -cmd login -email alice@example.com -password secret [-remember]
//	authcli -cmd register -name Alice -email alice@example.com -password secret [-business]
//	authcli -cmd whoami
//	authcli -cmd refresh
//	authcli -cmd logout
//	authcli -cmd forgot -email alice@example.com
//	authcli -cmd reset -reset-token <token> -password <new>
//
// The auth service origin comes from GOAUTHCLIENT_BASE_URL.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	goAuthClient "github.com/MrEthical07/goAuthClient"
)

func main() {
	var (
		cmd        = flag.String("cmd", "whoami", "login | register | whoami | refresh | logout | forgot | reset")
		email      = flag.String("email", "", "account email")
		pass       = flag.String("password", "", "account password")
		name       = flag.String("name", "", "display name (register)")
		business   = flag.Bool("business", false, "register a business account")
		remember   = flag.Bool("remember", false, "remember the email for the next login")
		resetToken = flag.String("reset-token", "", "password reset token (reset)")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	ctx := context.Background()

	cfg, err := goAuthClient.ConfigFromEnv(ctx)
	if err != nil {
		fatal(err)
	}

	sess, err := goAuthClient.New().
		WithConfig(cfg).
		WithLogger(logger).
		WithSignoutHandler(func() {
			fmt.Fprintln(os.Stderr, "session expired, please log in again")
		}).
		Build()
	if err != nil {
		fatal(err)
	}
	defer sess.Close()

	client := sess.Client()

	switch *cmd {
	case "login":
		if *email == "" {
			if stored := client.RememberedIdentifier(ctx); stored != "" {
				*email = stored
				fmt.Printf("using remembered email %s\n", stored)
			}
		}
		res, err := client.Login(ctx, *email, *pass)
		if err != nil {
			fatalMsg(err, "login failed")
		}
		if *remember {
			if err := client.RememberIdentifier(ctx, *email); err != nil {
				logger.Warn().Err(err).Msg("could not remember email")
			}
		}
		fmt.Printf("logged in as %s (%s)\n", res.User.Name, res.User.Role)

	case "register":
		res, err := client.Register(ctx, goAuthClient.RegisterRequest{
			Name:     *name,
			Email:    *email,
			Password: *pass,
			Business: *business,
		})
		if err != nil {
			fatalMsg(err, "registration failed")
		}
		fmt.Printf("registered %s (%s)\n", res.User.Email, res.User.Role)

	case "whoami":
		sess.Start(ctx)
		u := sess.User()
		if u == nil {
			fmt.Println("not logged in")
			os.Exit(1)
		}
		fmt.Printf("%s <%s> role=%s admin=%v vip=%v\n", u.Name, u.Email, u.Role, sess.IsAdmin(), sess.IsVIP())

	case "refresh":
		sess.Start(ctx)
		if !sess.Refresh(ctx) {
			fmt.Fprintln(os.Stderr, "refresh failed")
			os.Exit(1)
		}
		fmt.Println("token refreshed")

	case "logout":
		sess.Logout(ctx)
		fmt.Println("logged out")

	case "forgot":
		res, err := client.ForgotPassword(ctx, *email)
		if err != nil {
			fatalMsg(err, "request failed")
		}
		fmt.Println(res.Message)

	case "reset":
		res, err := client.ResetPassword(ctx, *resetToken, *pass)
		if err != nil {
			fatalMsg(err, "reset failed")
		}
		fmt.Println(res.Message)

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", *cmd)
		flag.Usage()
		os.Exit(2)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// fatalMsg prefers the server-provided message and hints at connectivity
// problems so the user knows a retry may help.
func fatalMsg(err error, fallback string) {
	fmt.Fprintln(os.Stderr, goAuthClient.Message(err, fallback))
	if errors.Is(err, goAuthClient.ErrNetwork) || errors.Is(err, goAuthClient.ErrUnavailable) {
		fmt.Fprintln(os.Stderr, "the auth service could not be reached; try again")
	}
	os.Exit(1)
}
