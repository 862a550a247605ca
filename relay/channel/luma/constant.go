package luma

import "fmt"

const ChannelName = "luma"

const (
	pathPing          = "ping"
	pathGenerations   = "generations"
	pathImage         = "generations/image"
	pathCredits       = "credits"
	pathCameraMotions = "generations/camera_motion/list"
)

func generationPath(id string) string {
	return fmt.Sprintf("%s/%s", pathGenerations, id)
}

func upscalePath(id string) string {
	return fmt.Sprintf("%s/%s/upscale", pathGenerations, id)
}

func audioPath(id string) string {
	return fmt.Sprintf("%s/%s/audio", pathGenerations, id)
}
