// server/cleanup/sweeper.go
package cleanup

import (
	"context"
	"log"
	"time"

	"github.com/streamkit/stream-manager/server/upload"
	"github.com/streamkit/stream-manager/shared/cluster"
)

// Task key hashed onto the instance ring; exactly one instance owns it.
const cleanupTaskKey = "upload_cleanup_task"

// LogoReferenceClearer clears stored logo references to a deleted upload.
// Both the session and team-preset stores implement it.
type LogoReferenceClearer interface {
	ClearLogoReferences(ctx context.Context, filename string) error
}

// Sweeper deletes uploads older than the TTL and scrubs any logo fields
// still pointing at them. Uploads are throwaway assets for one broadcast;
// anything a day old is stale by definition.
type Sweeper struct {
	uploads    *upload.Store
	assignment *cluster.AssignmentManager
	clearers   []LogoReferenceClearer
	ttl        time.Duration
	interval   time.Duration
}

func NewSweeper(uploads *upload.Store, assignment *cluster.AssignmentManager, ttl, interval time.Duration, clearers ...LogoReferenceClearer) *Sweeper {
	return &Sweeper{
		uploads:    uploads,
		assignment: assignment,
		clearers:   clearers,
		ttl:        ttl,
		interval:   interval,
	}
}

// Start runs the sweep loop until ctx is cancelled. Run in a goroutine.
func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Printf("Cleanup sweeper started (ttl %s, every %s).", s.ttl, s.interval)
	for {
		select {
		case <-ctx.Done():
			log.Println("Cleanup sweeper shutting down.")
			return
		case <-ticker.C:
			responsible, err := s.assignment.IsResponsible(cleanupTaskKey)
			if err != nil {
				log.Printf("ERROR: Cleanup sweeper: task assignment check failed: %v", err)
				continue
			}
			if !responsible {
				continue
			}
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one pass. A failure on one file never stops the rest of the
// pass; it is logged and the file is retried next hour.
func (s *Sweeper) Sweep(ctx context.Context) {
	files, err := s.uploads.ListFiles()
	if err != nil {
		log.Printf("ERROR: Cleanup sweeper: %v", err)
		return
	}

	cutoff := time.Now().Add(-s.ttl)
	removed := 0
	for _, f := range files {
		if f.ModTime.After(cutoff) {
			continue
		}
		if err := s.uploads.Delete(f.Name); err != nil {
			log.Printf("ERROR: Cleanup sweeper: %v", err)
			continue
		}
		for _, clearer := range s.clearers {
			if err := clearer.ClearLogoReferences(ctx, f.Name); err != nil {
				log.Printf("ERROR: Cleanup sweeper: %v", err)
			}
		}
		removed++
	}
	if removed > 0 {
		log.Printf("Cleanup sweeper removed %d stale upload(s).", removed)
	}
}
