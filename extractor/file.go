package extractor

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"reflect"
	"strings"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart
// forms (10MB). Larger uploads spill to temporary files.
const DefaultMaxMemory = 10 << 20

// FileConfig configures the file extractor for a route. Attaching it with
// Provide is how per-route upload limits are expressed:
//
//	r.With(extractor.Provide(extractor.FileConfig{MaxFileBytes: 2 << 20})).
//		Post("/avatar", uploadAvatar)
type FileConfig struct {
	// MaxMemory bounds the in-memory portion of multipart parsing.
	// Zero means DefaultMaxMemory.
	MaxMemory int64

	// MaxFileBytes limits the size of each uploaded file. Zero means no
	// limit. Oversized files are rejected with 413.
	MaxFileBytes int64

	// OnRejection converts extraction failures into responses.
	OnRejection RejectionHandler
}

// FileUpload represents an uploaded file with its metadata and content.
type FileUpload struct {
	// Filename is the original filename provided by the client
	Filename string

	// Size is the size of the file in bytes
	Size int64

	// Header contains the MIME header fields for this file part
	Header textproto.MIMEHeader

	// Content holds the file data in memory
	Content []byte
}

// ContentType returns the MIME type of the uploaded file. It prefers the
// part's Content-Type header and falls back to the file extension.
func (f *FileUpload) ContentType() string {
	if ct := f.Header.Get("Content-Type"); ct != "" {
		mediaType, _, _ := mime.ParseMediaType(ct)
		return mediaType
	}
	return mime.TypeByExtension(filepath.Ext(f.Filename))
}

// File creates a multipart file extractor. Struct fields are selected by
// `file:"name"` tags and must be FileUpload, *FileUpload, []FileUpload or
// []*FileUpload. Non-multipart requests are skipped so File composes with
// Form and JSON in one binder chain.
//
//	type UploadRequest struct {
//		Title    string       `form:"title"`
//		Avatar   FileUpload   `file:"avatar"`
//		Gallery  []FileUpload `file:"gallery"`
//		Document *FileUpload  `file:"document"`
//	}
func File() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		cfg, _ := ConfigFromContext[FileConfig](r.Context())

		contentType := r.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "multipart/form-data") {
			return nil
		}

		if r.MultipartForm == nil {
			maxMemory := cfg.MaxMemory
			if maxMemory <= 0 {
				maxMemory = DefaultMaxMemory
			}
			if err := r.ParseMultipartForm(maxMemory); err != nil {
				return reject(r, v, SourceFile, http.StatusBadRequest, cfg.OnRejection,
					fmt.Errorf("%w: %v", ErrInvalidFile, err))
			}
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Ptr || rv.IsNil() {
			return ErrInvalidTarget
		}

		rv = rv.Elem()
		if rv.Kind() != reflect.Struct {
			return ErrInvalidTarget
		}

		rt := rv.Type()

		for i := 0; i < rv.NumField(); i++ {
			field := rv.Field(i)
			fieldType := rt.Field(i)

			if !field.CanSet() {
				continue
			}

			tag := fieldType.Tag.Get("file")
			if tag == "" || tag == "-" {
				continue
			}

			fileHeaders := r.MultipartForm.File[tag]
			if len(fileHeaders) == 0 {
				continue
			}

			if cfg.MaxFileBytes > 0 {
				for _, header := range fileHeaders {
					if header.Size > cfg.MaxFileBytes {
						return reject(r, v, SourceFile, http.StatusRequestEntityTooLarge, cfg.OnRejection,
							fmt.Errorf("%w: file %q exceeds %d bytes", ErrBodyTooLarge, header.Filename, cfg.MaxFileBytes))
					}
				}
			}

			if err := setFileField(field, fieldType.Type, fileHeaders); err != nil {
				return reject(r, v, SourceFile, http.StatusBadRequest, cfg.OnRejection,
					fmt.Errorf("%w: field %s: %v", ErrInvalidFile, fieldType.Name, err))
			}
		}

		return nil
	}
}

func setFileField(field reflect.Value, fieldType reflect.Type, fileHeaders []*multipart.FileHeader) error {
	if fieldType.Kind() == reflect.Ptr {
		if len(fileHeaders) == 0 {
			return nil
		}
		if field.IsNil() {
			field.Set(reflect.New(fieldType.Elem()))
		}
		return setFileField(field.Elem(), fieldType.Elem(), fileHeaders)
	}

	if fieldType.Kind() == reflect.Slice {
		elemType := fieldType.Elem()
		slice := reflect.MakeSlice(fieldType, len(fileHeaders), len(fileHeaders))

		for i, header := range fileHeaders {
			upload, err := readFileHeader(header)
			if err != nil {
				return err
			}

			elem := slice.Index(i)
			if elemType.Kind() == reflect.Ptr {
				elem.Set(reflect.ValueOf(upload))
			} else {
				elem.Set(reflect.ValueOf(*upload))
			}
		}

		field.Set(slice)
		return nil
	}

	if len(fileHeaders) == 0 {
		return nil
	}

	if fieldType != reflect.TypeOf(FileUpload{}) {
		return fmt.Errorf("unsupported type for file field: %s", fieldType)
	}

	// Only the first file for non-slice fields
	upload, err := readFileHeader(fileHeaders[0])
	if err != nil {
		return err
	}

	field.Set(reflect.ValueOf(*upload))
	return nil
}

func readFileHeader(header *multipart.FileHeader) (*FileUpload, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", header.Filename, err)
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", header.Filename, err)
	}

	return &FileUpload{
		Filename: header.Filename,
		Size:     int64(len(content)),
		Header:   header.Header,
		Content:  content,
	}, nil
}
