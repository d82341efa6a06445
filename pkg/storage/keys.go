package storage

import "fmt"

// Key layout. Everything for an episode lives under one prefix so retention
// can purge it with a single prefix delete.
//
//	episodes/{episode_id}/{type}_v{version}.{ext}
//	episodes/{episode_id}/b_roll_{clip}_v{version}.mp4

// EpisodePrefix returns the object prefix holding an episode's artifacts.
func EpisodePrefix(episodeID string) string {
	return fmt.Sprintf("episodes/%s/", episodeID)
}

// ObjectKey returns the key for a versioned artifact of a type.
func ObjectKey(episodeID, assetType string, version int, ext string) string {
	return fmt.Sprintf("episodes/%s/%s_v%d.%s", episodeID, assetType, version, ext)
}

// BrollKey returns the key for one b-roll clip. Clips are numbered from 1 in
// script cue order; version tracks re-runs of the whole stage.
func BrollKey(episodeID string, clip, version int) string {
	return fmt.Sprintf("episodes/%s/b_roll_%d_v%d.mp4", episodeID, clip, version)
}
