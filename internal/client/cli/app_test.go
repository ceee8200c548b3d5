package cli

import (
	"bufio"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/authkeeper/internal/client"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("bob@dylan.com\n"))

	got, err := GetSimpleText(r, "Enter email", &out)
	require.NoError(t, err)
	assert.Equal(t, "bob@dylan.com", got)
	assert.Contains(t, out.String(), "Enter email")
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("no-newline"))

	got, err := GetSimpleText(r, "Enter email", &out)
	require.NoError(t, err)
	assert.Equal(t, "no-newline", got)
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(fd int) ([]byte, error) { return []byte("secret"), nil }

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, "secret", pw)
}

func TestApp_Run_UnknownCommand(t *testing.T) {
	app := NewApp(client.New("http://localhost:5000"), strings.NewReader(""), &bytes.Buffer{})

	err := app.Run(context.Background(), []string{"frobnicate"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestApp_Profile_WithTokenArg(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"email":"bob@dylan.com"}`))
	}))
	defer srv.Close()

	var out bytes.Buffer
	app := NewApp(client.New(srv.URL), strings.NewReader(""), &out)

	require.NoError(t, app.Run(context.Background(), []string{"profile", "the-token"}))
	assert.Contains(t, out.String(), "bob@dylan.com")
}

func TestApp_Register_PromptsForCredentials(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(fd int) ([]byte, error) { return []byte("pw"), nil }

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "bob@dylan.com", r.PostForm.Get("email"))
		assert.Equal(t, "pw", r.PostForm.Get("password"))
		w.Write([]byte(`{"email":"bob@dylan.com","message":"user created"}`))
	}))
	defer srv.Close()

	var out bytes.Buffer
	app := NewApp(client.New(srv.URL), strings.NewReader("bob@dylan.com\n"), &out)

	require.NoError(t, app.Run(context.Background(), []string{"register"}))
	assert.Contains(t, out.String(), "user created")
}
