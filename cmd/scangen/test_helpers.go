// test_helpers.go
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Shared fixtures
// -----------------------------------------------------------------------------

// annotatedSource is a minimal package file carrying one directive of each
// flavor, used by scan/run tests.
const annotatedSource = `package mailer

type EmailSender interface {
	Send(to string) error
}

type Notifier interface {
	Notify(event string)
}

//scanreg:register lifetime=scoped implements=EmailSender,Notifier contracts=EmailSender
type SMTPMailer struct{}

func (*SMTPMailer) Send(string) error { return nil }
func (*SMTPMailer) Notify(string)     {}

//scanreg:register self
type Clock struct{}
`

//
// -----------------------------------------------------------------------------
// Small helpers
// -----------------------------------------------------------------------------

// writeTempFile writes a file under dir/name and returns its full path.
func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

// requirePanicContains asserts fn panics and the panic message contains
// wantSub.
func requirePanicContains(t *testing.T, wantSub string, fn func()) {
	t.Helper()

	defer func() {
		recovered := recover()
		require.NotNil(t, recovered)

		var message string
		switch v := recovered.(type) {
		case error:
			message = v.Error()
		case string:
			message = v
		default:
			message = fmt.Sprintf("%v", v)
		}
		require.Contains(t, message, wantSub)
	}()

	fn()
}
