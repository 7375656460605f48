package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/personalab/persona-board/internal/logger"
	"github.com/personalab/persona-board/internal/utils"
)

const (
	// maxUploadBytes caps the whole multipart request body.
	maxUploadBytes = 100 << 20

	// multipartMemory is how much of the body may stay in memory while
	// parsing; anything larger spools to temporary files on disk.
	multipartMemory = 32 << 20
)

// uploadedFile is one file part of a multipart GraphQL request, keyed by
// the client-assigned part name.
type uploadedFile struct {
	Content  multipart.File
	Filename string
}

type uploadsCtxKey struct{}

// uploadFromContext returns the multipart file the middleware registered
// under key, if any.
func uploadFromContext(ctx context.Context, key string) (*uploadedFile, bool) {
	files, ok := ctx.Value(uploadsCtxKey{}).(map[string]*uploadedFile)
	if !ok {
		return nil, false
	}
	file, ok := files[key]
	return file, ok
}

// withUploads translates a GraphQL multipart request into a plain JSON
// GraphQL request before the wrapped handler sees it.
//
// The multipart form carries an "operations" field with the GraphQL
// request, a "map" field binding file part names to variable paths, and
// one part per file. The middleware replaces each mapped variable with
// the part name, stashes the open files in the request context, and
// rewrites the body as application/json. Non-multipart requests pass
// through untouched.
func withUploads(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			log.Err(err).Msg("parsing multipart form failed")
			writeRequestError(w, "malformed multipart request")
			return
		}
		defer r.MultipartForm.RemoveAll()

		var operations map[string]interface{}
		if err := json.Unmarshal([]byte(r.FormValue("operations")), &operations); err != nil {
			log.Err(err).Msg("parsing operations field failed")
			writeRequestError(w, "malformed operations field")
			return
		}

		var fileMap map[string][]string
		if err := json.Unmarshal([]byte(r.FormValue("map")), &fileMap); err != nil {
			log.Err(err).Msg("parsing map field failed")
			writeRequestError(w, "malformed map field")
			return
		}

		files := make(map[string]*uploadedFile, len(fileMap))
		defer func() {
			for _, file := range files {
				file.Content.Close()
			}
		}()

		for key, paths := range fileMap {
			file, header, err := r.FormFile(key)
			if err != nil {
				log.Err(err).Str("key", key).Msg("mapped file part is missing")
				writeRequestError(w, "file part "+key+" is missing")
				return
			}
			files[key] = &uploadedFile{Content: file, Filename: header.Filename}

			for _, path := range paths {
				if err := bindVariable(operations, path, key); err != nil {
					log.Err(err).Str("path", path).Msg("binding file variable failed")
					writeRequestError(w, "invalid variable path "+path)
					return
				}
			}
		}

		body, err := json.Marshal(operations)
		if err != nil {
			log.Err(err).Msg("rebuilding request body failed")
			writeRequestError(w, "malformed multipart request")
			return
		}

		ctx := context.WithValue(r.Context(), uploadsCtxKey{}, files)
		jsonReq := r.Clone(ctx)
		jsonReq.Body = io.NopCloser(bytes.NewReader(body))
		jsonReq.ContentLength = int64(len(body))
		jsonReq.Header.Set("Content-Type", "application/json")

		next.ServeHTTP(w, jsonReq)
	})
}

// bindVariable sets the value at a dot-separated path like
// "variables.file" or "variables.files.0" inside the decoded operations
// document.
func bindVariable(operations map[string]interface{}, path, value string) error {
	segments := strings.Split(path, ".")
	if len(segments) == 0 {
		return errInvalidVariablePath
	}

	var current interface{} = operations
	for i, segment := range segments {
		last := i == len(segments)-1

		switch node := current.(type) {
		case map[string]interface{}:
			if last {
				node[segment] = value
				return nil
			}
			next, ok := node[segment]
			if !ok {
				return errInvalidVariablePath
			}
			current = next
		case []interface{}:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return errInvalidVariablePath
			}
			if last {
				node[index] = value
				return nil
			}
			current = node[index]
		default:
			return errInvalidVariablePath
		}
	}

	return errInvalidVariablePath
}

// errInvalidVariablePath reports a "map" entry pointing at a variable
// location the operations document does not contain.
var errInvalidVariablePath = errors.New("invalid variable path")

// writeRequestError reports a broken multipart envelope in the standard
// GraphQL error response shape.
func writeRequestError(w http.ResponseWriter, message string) {
	type gqlError struct {
		Message string `json:"message"`
	}
	utils.WriteJSON(w, map[string][]gqlError{
		"errors": {{Message: message}},
	}, http.StatusBadRequest)
}
