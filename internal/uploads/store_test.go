package uploads

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartFile(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func TestStoreSaveAndServe(t *testing.T) {
	store, err := NewStore(t.TempDir(), 1)
	require.NoError(t, err)

	name, err := store.Save(multipartFile(t, "photo.JPG", "fake image bytes"))
	require.NoError(t, err)

	// stored under a generated name, original name discarded
	assert.NotContains(t, name, "photo")
	assert.True(t, strings.HasSuffix(name, ".jpg"))

	path, err := store.Path(name)
	require.NoError(t, err)
	assert.NotEmpty(t, path)
}

func TestStoreRejectsDisallowedExtension(t *testing.T) {
	store, err := NewStore(t.TempDir(), 1)
	require.NoError(t, err)

	_, err = store.Save(multipartFile(t, "malware.exe", "nope"))
	assert.Error(t, err)
}

func TestStorePathRejectsTraversal(t *testing.T) {
	store, err := NewStore(t.TempDir(), 1)
	require.NoError(t, err)

	_, err = store.Path("../etc/passwd")
	assert.Error(t, err)
	_, err = store.Path("")
	assert.Error(t, err)
	_, err = store.Path("does-not-exist.jpg")
	assert.Error(t, err)
}
