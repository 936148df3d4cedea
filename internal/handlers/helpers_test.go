package handlers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"lindash/internal/ingest"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const connectionsFixture = "Notes:\n" +
	"\"When exporting your connection data, you may notice that some emails are missing.\"\n" +
	"First Name,Last Name,URL,Email Address,Company,Position,Connected On\n" +
	"Ada,Lovelace,https://example.com/ada,ada@example.com,Acme,Engineer,02 Jan 2024\n" +
	"Grace,Hopper,https://example.com/grace,,Acme,Admiral,15 Feb 2024\n" +
	"Alan,Turing,https://example.com/alan,alan@example.com,Bletchley,Engineer,20 Mar 2024\n"

const invitationsFixture = "From,To,Sent At,Message,Direction\n" +
	"Me,Ada,\"1/2/24, 3:00 PM\",Nice to meet you,OUTGOING\n" +
	"Grace,Me,\"2/10/24, 9:30 AM\",,INCOMING\n"

const messagesFixture = "CONVERSATION ID,FROM,TO,DATE,CONTENT,FOLDER,IS MESSAGE DRAFT\n" +
	"c1,Ada,Me,2024-01-05,hello there,INBOX,No\n" +
	"c1,Me,Ada,2024-01-06,hi back,SENT,No\n" +
	"c2,Me,Grace,2024-02-01,draft text,ARCHIVE,Yes\n"

// newTestService ingests a small fixture bundle and returns a memory-only
// service ready to serve it.
func newTestService(t *testing.T) *ingest.Service {
	t.Helper()
	dir := t.TempDir()
	for name, content := range map[string]string{
		"Connections.csv": connectionsFixture,
		"Invitations.csv": invitationsFixture,
		"messages.csv":    messagesFixture,
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	svc := ingest.New(zerolog.Nop(), nil, time.Minute)
	_, err := svc.Ingest(dir, "test-export")
	require.NoError(t, err)
	return svc
}

// newEmptyService returns a service with nothing ingested.
func newEmptyService() *ingest.Service {
	return ingest.New(zerolog.Nop(), nil, time.Minute)
}
