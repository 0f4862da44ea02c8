package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlightJSON_Disabled(t *testing.T) {
	SetEnabled(false)
	defer SetEnabled(true)

	in := `{"alias":"opus","valid":true}`
	assert.Equal(t, in, HighlightJSON(in))
	assert.Equal(t, "✔", CheckMark())
}

func TestHighlightJSON_Enabled(t *testing.T) {
	SetEnabled(true)

	out := HighlightJSON(`{"alias":"opus","count":3,"valid":true}`)
	assert.Contains(t, out, Blue+`"alias"`+ResetCode+":")
	assert.Contains(t, out, Green+`"opus"`+ResetCode)
	assert.Contains(t, out, Purple+"3"+ResetCode)
	assert.Contains(t, out, Yellow+"true"+ResetCode)
}

func TestPrettyPrint(t *testing.T) {
	SetEnabled(false)
	defer SetEnabled(true)

	var buf bytes.Buffer
	require.NoError(t, PrettyPrint(&buf, map[string]string{"opus": "claude-opus-4-5-20251101"}))
	assert.Equal(t, "{\n  \"opus\": \"claude-opus-4-5-20251101\"\n}\n", buf.String())
}

func TestPrettyPrint_Highlighted(t *testing.T) {
	SetEnabled(true)

	var buf bytes.Buffer
	require.NoError(t, PrettyPrint(&buf, map[string]interface{}{"aliased": false, "canonical": nil}))
	assert.Contains(t, buf.String(), Blue+`"aliased"`+ResetCode+": "+Yellow+"false"+ResetCode)
	assert.Contains(t, buf.String(), DimCode+"null"+ResetCode)
}

func TestPrettyPrint_UnsupportedValue(t *testing.T) {
	var buf bytes.Buffer
	err := PrettyPrint(&buf, make(chan int))
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func releaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name":"` + tag + `"}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestUpdateChecker_Outdated(t *testing.T) {
	srv := releaseServer(t, "v1.2.0")
	u := &UpdateChecker{Client: srv.Client(), URL: srv.URL}

	latest, err := u.Latest(context.Background(), "v1.1.9")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "v1.2.0", latest.Original())

	var buf bytes.Buffer
	u.PrintUpdateNotice(context.Background(), &buf, "v1.1.9")
	assert.Contains(t, buf.String(), "outdated version (v1.1.9)")
}

func TestUpdateChecker_UpToDate(t *testing.T) {
	srv := releaseServer(t, "v1.0.0")
	u := &UpdateChecker{Client: srv.Client(), URL: srv.URL}

	latest, err := u.Latest(context.Background(), "v1.0.0")
	require.NoError(t, err)
	assert.Nil(t, latest)

	var buf bytes.Buffer
	u.PrintUpdateNotice(context.Background(), &buf, "v1.0.0")
	assert.Empty(t, buf.String())
}

func TestUpdateChecker_InvalidCurrent(t *testing.T) {
	u := NewUpdateChecker()
	_, err := u.Latest(context.Background(), "not-a-version")
	assert.Error(t, err)
}
