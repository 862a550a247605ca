package model

// Tool names exposed to the orchestrator. Adding a tool means extending this
// list, the schema table, the validator switch and the adaptor switch; all
// four are exhaustive over these constants.
const (
	ToolPing              = "ping"
	ToolCreateGeneration  = "create_generation"
	ToolGetGeneration     = "get_generation"
	ToolListGenerations   = "list_generations"
	ToolDeleteGeneration  = "delete_generation"
	ToolUpscaleGeneration = "upscale_generation"
	ToolAddAudio          = "add_audio"
	ToolGenerateImage     = "generate_image"
	ToolGetCredits        = "get_credits"
	ToolGetCameraMotions  = "get_camera_motions"
)

func ToolNames() []string {
	return []string{
		ToolPing,
		ToolCreateGeneration,
		ToolGetGeneration,
		ToolListGenerations,
		ToolDeleteGeneration,
		ToolUpscaleGeneration,
		ToolAddAudio,
		ToolGenerateImage,
		ToolGetCredits,
		ToolGetCameraMotions,
	}
}

// Generation lifecycle states as reported by the Luma API.
const (
	StateQueued    = "queued"
	StateDreaming  = "dreaming"
	StateCompleted = "completed"
	StateFailed    = "failed"
)

const (
	DefaultVideoModel = "ray-2"
	DefaultImageModel = "photon-1"
)

var Resolutions = []string{"540p", "720p", "1080p", "4k"}
var Durations = []string{"5s", "9s"}
var ImageModels = []string{"photon-1", "photon-flash-1"}

var resolutionRank = map[string]int{
	"540p":  1,
	"720p":  2,
	"1080p": 3,
	"4k":    4,
}

// ResolutionRank returns the position of r in the 540p < 720p < 1080p < 4k
// order, or 0 when r is not a known resolution.
func ResolutionRank(r string) int {
	return resolutionRank[r]
}
