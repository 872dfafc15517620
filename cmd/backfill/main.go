// Backfill reconciles identity-provider accounts with profile records,
// healing users whose creation event was missed or dropped.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"catalog-manager/functions/internal/config"
	"catalog-manager/functions/internal/domain/profile"
	"catalog-manager/functions/internal/firebase"

	"google.golang.org/api/iterator"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "print what would be synced without writing")
	flag.Parse()

	ctx := context.Background()
	cfg := config.Load()

	clients, err := firebase.NewClients(ctx, cfg)
	if err != nil {
		log.Fatalf("firebase clients init failed: %v", err)
	}
	defer clients.Close()

	profileSvc := profile.NewService(profile.NewRepo(clients.Firestore), nil)

	synced, failed := 0, 0
	iter := clients.Auth.Users(ctx, "")
	for {
		u, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Fatalf("list users: %v", err)
		}

		id := profile.Identity{
			UID:         u.UID,
			Email:       u.Email,
			DisplayName: u.DisplayName,
			PhotoURL:    u.PhotoURL,
		}

		if *dryRun {
			fmt.Printf("would sync %s (%s)\n", id.UID, id.Email)
			continue
		}

		if err := profileSvc.SyncIdentity(ctx, id); err != nil {
			log.Printf("sync %s failed: %v", id.UID, err)
			failed++
			continue
		}
		synced++
	}

	fmt.Printf("ok: %d profiles synced, %d failed\n", synced, failed)
}
