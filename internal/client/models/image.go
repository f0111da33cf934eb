package models

// FileMeta describes a candidate profile image before its content is
// inspected: the file name, the detected MIME type and the size in bytes.
type FileMeta struct {
	Name string
	MIME string
	Size int64
}

// ImagePreview is the decoded representation of a selected image, suitable
// for display: a data URL plus pixel dimensions. Width/Height are zero when
// the format cannot be decoded locally (webp).
type ImagePreview struct {
	DataURL string
	Width   int
	Height  int
}

// ImageSelection is a candidate file together with its raw content and, once
// decoding finishes, its preview. A selection exists only between file
// selection and either cancel or successful upload; a newer selection
// supersedes it at any time.
type ImageSelection struct {
	Meta    FileMeta
	Content []byte
	Preview *ImagePreview
}
