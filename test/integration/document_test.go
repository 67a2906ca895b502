package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"wealthcoach_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFileUpload builds a multipart body with a single "file" part carrying
// an explicit content type.
func buildFileUpload(t *testing.T, fileName, contentType string, content []byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestDocument_UploadListDownloadDelete(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginClient(t, ts, tx)
	details := helpers.CreatePersonalDetails(t, tx, user.ID, "")

	content := []byte("%PDF-1.4 fake contract")
	body, contentType := buildFileUpload(t, "contract.pdf", "application/pdf", content)

	res, bodyStr := ts.SendRaw(t, tx, http.MethodPost,
		fmt.Sprintf("/api/v1/personal-details/%s/documents", details.ID), token, contentType, body)
	require.Equal(t, http.StatusCreated, res.Code, "upload failed: %s", bodyStr)

	var uploaded struct {
		ID           string `json:"id"`
		DocumentName string `json:"document_name"`
		Size         int64  `json:"size"`
		URL          string `json:"url"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &uploaded))
	assert.Equal(t, "contract.pdf", uploaded.DocumentName)
	assert.Equal(t, int64(len(content)), uploaded.Size)

	// The advertised url must be a routable endpoint, not a storage path.
	require.Equal(t, "/api/v1/documents/"+uploaded.ID+"/download", uploaded.URL)
	res, _ = ts.SendRequest(t, tx, http.MethodGet, uploaded.URL, token, nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, content, res.Body.Bytes())

	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet,
		fmt.Sprintf("/api/v1/personal-details/%s/documents", details.ID), token, nil)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, bodyStr, "contract.pdf")

	res, _ = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/documents/"+uploaded.ID+"/download", token, nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "application/pdf", res.Header().Get("Content-Type"))
	assert.Contains(t, res.Header().Get("Content-Disposition"), "contract.pdf")
	assert.Equal(t, content, res.Body.Bytes())

	res, _ = ts.SendRequest(t, tx, http.MethodDelete, "/api/v1/documents/"+uploaded.ID, token, nil)
	assert.Equal(t, http.StatusOK, res.Code)

	res, _ = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/documents/"+uploaded.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestDocument_DisallowedContentType(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginClient(t, ts, tx)
	details := helpers.CreatePersonalDetails(t, tx, user.ID, "")

	body, contentType := buildFileUpload(t, "virus.exe", "application/x-msdownload", []byte("MZ"))

	res, _ := ts.SendRaw(t, tx, http.MethodPost,
		fmt.Sprintf("/api/v1/personal-details/%s/documents", details.ID), token, contentType, body)

	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestDocument_Rename(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginClient(t, ts, tx)
	details := helpers.CreatePersonalDetails(t, tx, user.ID, "")

	body, contentType := buildFileUpload(t, "scan.png", "image/png", []byte{0x89, 0x50, 0x4e, 0x47})
	res, bodyStr := ts.SendRaw(t, tx, http.MethodPost,
		fmt.Sprintf("/api/v1/personal-details/%s/documents", details.ID), token, contentType, body)
	require.Equal(t, http.StatusCreated, res.Code, "upload failed: %s", bodyStr)

	var uploaded struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &uploaded))

	res, bodyStr = ts.SendRequest(t, tx, http.MethodPut, "/api/v1/documents/"+uploaded.ID, token, map[string]interface{}{
		"document_name": "id-card-scan.png",
	})
	assert.Equal(t, http.StatusOK, res.Code, "rename failed: %s", bodyStr)
	assert.Contains(t, bodyStr, "id-card-scan.png")
}

func TestDocument_StrangerGets403(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	ownerToken, owner := helpers.CreateAndLoginClient(t, ts, tx)
	strangerToken, _ := helpers.CreateAndLoginClient(t, ts, tx)
	details := helpers.CreatePersonalDetails(t, tx, owner.ID, "")

	body, contentType := buildFileUpload(t, "secret.pdf", "application/pdf", []byte("%PDF"))
	res, bodyStr := ts.SendRaw(t, tx, http.MethodPost,
		fmt.Sprintf("/api/v1/personal-details/%s/documents", details.ID), ownerToken, contentType, body)
	require.Equal(t, http.StatusCreated, res.Code, "upload failed: %s", bodyStr)

	var uploaded struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &uploaded))

	res, _ = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/documents/"+uploaded.ID, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.Code)

	res, _ = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/documents/"+uploaded.ID+"/download", strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.Code)
}
