package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/ichigoyakuza/findmydjapp-sub001/internal/booking"
	"github.com/ichigoyakuza/findmydjapp-sub001/internal/catalog"
	"github.com/ichigoyakuza/findmydjapp-sub001/internal/config"
	"github.com/ichigoyakuza/findmydjapp-sub001/internal/events"
	"github.com/ichigoyakuza/findmydjapp-sub001/internal/hub"
	"github.com/ichigoyakuza/findmydjapp-sub001/internal/playlist"
	"github.com/ichigoyakuza/findmydjapp-sub001/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var pub events.Publisher
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		pub = events.NewRedisPublisher(redis.NewClient(opt))
	} else {
		pub = events.NewMemoryPublisher(100)
	}
	defer pub.Close()

	djs := catalog.NewDemoCatalog(cfg.LoadDelay)

	playlists := playlist.NewStore(pub)
	playlists.LoadDemo(cfg.LoadDelay)

	bookings := booking.NewStore(djs, pub)

	ownerOf := func(resource, id string) (string, bool) {
		switch resource {
		case "playlist":
			return playlists.Owner(id)
		case "booking":
			return bookings.Owner(id)
		}
		return "", false
	}
	sessions := session.NewManager(cfg.JWTSecret, cfg.AccessTTL, ownerOf)

	sharer := playlist.NewSharer(cfg.ShareBaseURL)

	r := chi.NewRouter()
	r.Use(sessions.Middleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","service":"findmydj-api"}`))
	})

	r.Mount("/auth", session.NewServer(sessions).Router())
	r.Mount("/catalog", catalog.NewServer(djs).Router())
	r.Mount("/music", playlist.NewServer(playlists, sharer).Router())
	r.Mount("/events", booking.NewServer(bookings).Router())
	r.Mount("/discover", hub.NewServer().Router())

	log.Printf("findmydj-api on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("listen: %v", err)
	}
}
