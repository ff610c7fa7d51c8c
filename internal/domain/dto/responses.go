package dto

type FileEntry struct {
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	Uploaded int64  `json:"uploaded"`
	Type     string `json:"type"`
	URL      string `json:"url"`
}

type FileListing struct {
	Files   []FileEntry `json:"files"`
	Folders []string    `json:"folders"`
}

type UploadResult struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	FileName string `json:"fileName"`
	Size     int64  `json:"size"`
}

type UploadTarget struct {
	UploadURL string `json:"uploadUrl"`
	FileName  string `json:"fileName"`
	PublicURL string `json:"publicUrl"`
}

type GeneratedImage struct {
	Image string `json:"image"`
}

type CreatedRef struct {
	ID string `json:"id"`
}

type Error struct {
	Message string `json:"error"`
}
