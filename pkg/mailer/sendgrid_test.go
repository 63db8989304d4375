package mailer

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedMail struct {
	Personalizations []struct {
		To []struct {
			Email string `json:"email"`
		} `json:"to"`
	} `json:"personalizations"`
	From struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"from"`
	Subject string `json:"subject"`
	Content []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
	Attachments []struct {
		Content     string `json:"content"`
		Type        string `json:"type"`
		Filename    string `json:"filename"`
		Disposition string `json:"disposition"`
	} `json:"attachments"`
}

func TestSendBatchesAllRecipientsInOneRequest(t *testing.T) {
	var requests int
	var got capturedMail

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	svc := NewService("test-key", "noreply@x.com", "Meeting Summarizer")
	svc.Host = srv.URL

	att := &Attachment{
		Content:  []byte("fake docx bytes"),
		Filename: "meeting-summary.docx",
		Type:     "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
	err := svc.Send(context.Background(), []string{"a@x.com", "b@x.com"}, "Meeting Summary", "Please find the meeting summary attached.", att)
	require.NoError(t, err)

	// One send addressing both recipients, not two separate sends
	assert.Equal(t, 1, requests)
	require.Len(t, got.Personalizations, 1)
	require.Len(t, got.Personalizations[0].To, 2)
	assert.Equal(t, "a@x.com", got.Personalizations[0].To[0].Email)
	assert.Equal(t, "b@x.com", got.Personalizations[0].To[1].Email)

	assert.Equal(t, "noreply@x.com", got.From.Email)
	assert.Equal(t, "Meeting Summary", got.Subject)
	require.Len(t, got.Content, 1)
	assert.Equal(t, "text/plain", got.Content[0].Type)

	require.Len(t, got.Attachments, 1)
	assert.Equal(t, "meeting-summary.docx", got.Attachments[0].Filename)
	assert.Equal(t, "attachment", got.Attachments[0].Disposition)
	decoded, err := base64.StdEncoding.DecodeString(got.Attachments[0].Content)
	require.NoError(t, err)
	assert.Equal(t, []byte("fake docx bytes"), decoded)
}

func TestSendRejectsEmptyRecipients(t *testing.T) {
	svc := NewService("test-key", "noreply@x.com", "")
	err := svc.Send(context.Background(), nil, "subject", "body", nil)
	assert.Error(t, err)
}

func TestSendRequiresSender(t *testing.T) {
	svc := NewService("test-key", "", "")
	err := svc.Send(context.Background(), []string{"a@x.com"}, "subject", "body", nil)
	assert.Error(t, err)
}

func TestSendSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errors":[{"message":"invalid api key"}]}`))
	}))
	defer srv.Close()

	svc := NewService("bad-key", "noreply@x.com", "")
	svc.Host = srv.URL

	err := svc.Send(context.Background(), []string{"a@x.com"}, "subject", "body", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
