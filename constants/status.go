package constants

// SaveStatus describes the outcome of saving an extract for a given receipt hash.
type SaveStatus string

// Stable values (store these exact strings in DB).
const (
	SaveCreated           SaveStatus = "created"
	SaveReplacedDuplicate SaveStatus = "replaced_duplicate"
	SaveQualityUpgrade    SaveStatus = "quality_upgrade"
)

// UploadReason records why the stored row was last written.
type UploadReason string

const (
	ReasonInitial          UploadReason = "initial"
	ReasonDuplicateReplace UploadReason = "duplicate-replace"
	ReasonQualityUpgrade   UploadReason = "quality-upgrade"
)
