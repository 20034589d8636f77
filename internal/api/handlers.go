package api

import (
	"embed"
	"encoding/base64"
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/nguyentantai21042004/recording-qc/internal/logger"
	"github.com/nguyentantai21042004/recording-qc/internal/media"
	"github.com/nguyentantai21042004/recording-qc/internal/pipeline"
	"github.com/nguyentantai21042004/recording-qc/internal/report"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// multipart parts above this size are spooled to disk
const maxMemory = 32 << 20

var (
	errBadUpload      = errors.New("invalid upload")
	errUploadTooLarge = errors.New("upload exceeds the size limit")
)

type Handler struct {
	pipeline  pipeline.Pipeline
	logger    logger.Logger
	maxUpload int64
	tempDir   string
}

func NewHandler(p pipeline.Pipeline, log logger.Logger, maxUploadBytes int64, tempDir string) *Handler {
	return &Handler{pipeline: p, logger: log, maxUpload: maxUploadBytes, tempDir: tempDir}
}

type pageData struct {
	Error        string
	Result       *pipeline.Result
	TextDownload template.URL
	DocxDownload template.URL
	TextFileName string
	DocxFileName string
}

type checkResponse struct {
	RunID      string `json:"run_id"`
	Transcript string `json:"transcript"`
	SlideText  string `json:"slide_text"`
	Report     string `json:"report"`
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageData{})
}

// Check runs the pipeline for the submitted form and renders the report page
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	res, err := h.runUpload(w, r)
	if err != nil {
		h.render(w, r, statusFor(err), pageData{Error: err.Error()})
		return
	}

	data := pageData{
		Result:       res,
		TextDownload: dataURI(report.TextMIME+";charset=utf-8", []byte(res.Report)),
		TextFileName: report.TextFileName,
		DocxFileName: report.DocxFileName,
	}
	if docx, err := report.DocxBytes(h.tempDir, res.Report); err != nil {
		h.logger.Warn(r.Context(), "Failed to render docx report: %v", err)
	} else {
		data.DocxDownload = dataURI(report.DocxMIME, docx)
	}

	h.render(w, r, http.StatusOK, data)
}

// CheckJSON is Check for scripted clients
func (h *Handler) CheckJSON(w http.ResponseWriter, r *http.Request) {
	res, err := h.runUpload(w, r)
	if err != nil {
		jsonError(w, err.Error(), statusFor(err))
		return
	}

	jsonResponse(w, checkResponse{
		RunID:      res.RunID,
		Transcript: res.Transcript,
		SlideText:  res.SlideText,
		Report:     res.Report,
	}, http.StatusOK)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "ok")
}

// runUpload reads both uploads and runs the pipeline on them.
func (h *Handler) runUpload(w http.ResponseWriter, r *http.Request) (*pipeline.Result, error) {
	if h.maxUpload > 0 {
		if r.ContentLength > h.maxUpload {
			return nil, errUploadTooLarge
		}
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	}
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, errors.Join(errUploadTooLarge, err)
		}
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, pipeline.ErrMissingInput
		}
		return nil, errors.Join(errBadUpload, err)
	}
	defer r.MultipartForm.RemoveAll()

	video, videoHeader, err := formFile(r, "video")
	if err != nil {
		return nil, err
	}
	defer video.Close()

	deck, deckHeader, err := formFile(r, "slides")
	if err != nil {
		return nil, err
	}
	defer deck.Close()

	h.logger.Info(r.Context(), "Received upload: video=%s (%d bytes) slides=%s (%d bytes)",
		videoHeader.Filename, videoHeader.Size, deckHeader.Filename, deckHeader.Size)

	res, err := h.pipeline.Run(r.Context(), pipeline.Input{
		Video:      video,
		VideoName:  videoHeader.Filename,
		Slides:     deck,
		SlidesSize: deckHeader.Size,
	})
	if err != nil {
		h.logger.Error(r.Context(), "Quality check failed: %v", err)
		return nil, err
	}

	return res, nil
}

func formFile(r *http.Request, field string) (multipart.File, *multipart.FileHeader, error) {
	f, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, pipeline.ErrMissingInput
	}
	if err != nil {
		return nil, nil, errors.Join(errBadUpload, err)
	}
	return f, header, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, pipeline.ErrMissingInput), errors.Is(err, errBadUpload):
		return http.StatusBadRequest
	case errors.Is(err, errUploadTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, media.ErrConversionFailed):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pages.ExecuteTemplate(w, "index.html", data); err != nil {
		h.logger.Error(r.Context(), "Failed to render page: %v", err)
	}
}

// dataURI embeds content in a link so the download is byte-identical to it.
func dataURI(mime string, content []byte) template.URL {
	return template.URL("data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(content))
}

func jsonResponse(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
