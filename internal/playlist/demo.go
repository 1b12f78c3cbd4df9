package playlist

import "time"

// Demo fixtures shown in the music hub before any user mutation.
func demoPlaylists() []Playlist {
	created := time.Now().Add(-72 * time.Hour)

	warmup := []Track{
		{ID: "trk-1", Title: "Midnight Drive", Artist: "Luna Waves", Duration: 245, URL: "https://cdn.demo.local/audio/midnight-drive.mp3", Genre: "Deep House", Year: 2023, BPM: 122},
		{ID: "trk-2", Title: "Neon Skyline", Artist: "DJ Nexus", Duration: 312, URL: "https://cdn.demo.local/audio/neon-skyline.mp3", Genre: "Techno", Year: 2024, BPM: 128},
		{ID: "trk-3", Title: "Low End Theory", Artist: "Bass Master", Duration: 198, URL: "https://cdn.demo.local/audio/low-end-theory.mp3", Genre: "Trap", Year: 2022, BPM: 140},
	}
	party := []Track{
		{ID: "trk-2", Title: "Neon Skyline", Artist: "DJ Nexus", Duration: 312, URL: "https://cdn.demo.local/audio/neon-skyline.mp3", Genre: "Techno", Year: 2024, BPM: 128},
		{ID: "trk-4", Title: "Brass & Fire", Artist: "Vinyl Vince", Duration: 267, URL: "https://cdn.demo.local/audio/brass-and-fire.mp3", Genre: "Funk", Year: 2021, BPM: 110},
	}

	return []Playlist{
		{
			ID:            "pl-demo-1",
			Name:          "Warm-Up Set",
			Description:   "Opening hour vibes.",
			Tracks:        warmup,
			IsPublic:      true,
			OwnerID:       "user-dj-1",
			CreatedAt:     created,
			UpdatedAt:     created,
			TotalDuration: totalDuration(warmup),
			Category:      CategoryPublic,
			Followers:     42,
			Tags:          []string{"warmup", "house"},
		},
		{
			ID:            "pl-demo-2",
			Name:          "Peak Time",
			Description:   "Main floor, no filler.",
			Tracks:        party,
			IsPublic:      false,
			OwnerID:       "user-dj-1",
			CreatedAt:     created.Add(24 * time.Hour),
			UpdatedAt:     created.Add(24 * time.Hour),
			TotalDuration: totalDuration(party),
			Category:      CategoryPersonal,
			Tags:          []string{"peak"},
		},
	}
}
