package main

import (
	"context"
	"log"
	"time"

	"catalog-manager/functions/internal/config"
	"catalog-manager/functions/internal/domain/catalog"
	"catalog-manager/functions/internal/domain/profile"
	"catalog-manager/functions/internal/firebase"
	"catalog-manager/functions/internal/handlers"
	"catalog-manager/functions/internal/mediaurl"
	"catalog-manager/functions/internal/notifications"

	credentials "cloud.google.com/go/iam/credentials/apiv1"
	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	clients, err := firebase.NewClients(ctx, cfg)
	if err != nil {
		log.Fatalf("firebase clients init failed: %v", err)
	}
	defer clients.Close()

	// IAM client is optional; only needed for signed URLs.
	iamClient, err := credentials.NewIamCredentialsClient(ctx)
	if err != nil {
		log.Printf("iam credentials client unavailable, signed urls limited to local keys: %v", err)
		iamClient = nil
	}

	resolver := mediaurl.NewGCS(clients.Storage, iamClient,
		cfg.SignedURLServiceAccountEmail,
		time.Duration(cfg.SignedURLExpirySeconds)*time.Second)

	var notifier profile.Notifier
	if clients.Messaging != nil {
		notifier = notifications.NewFCM(clients.Messaging, cfg.WelcomeTopic)
	} else {
		log.Println("messaging client not available, account notices disabled")
	}

	profileSvc := profile.NewService(profile.NewRepo(clients.Firestore), notifier)
	catalogSvc := catalog.NewService(catalog.NewRepo(clients.Firestore), resolver, catalog.Options{
		UseSignedURL: cfg.UseSignedURL,
		Emulator:     cfg.IsEmulator(),
	})

	accounts := handlers.NewAccounts(profileSvc)
	profiles := handlers.NewProfiles(profileSvc)
	media := handlers.NewMedia(catalogSvc)

	functions.CloudEvent("account-created", accounts.Created)
	functions.CloudEvent("account-deleted", accounts.Deleted)
	functions.CloudEvent("profile-created", profiles.Created)
	functions.CloudEvent("profile-updated", profiles.Updated)
	functions.CloudEvent("media-finalized", media.Finalized)
	functions.CloudEvent("media-deleted", media.Deleted)

	ops := handlers.NewOpsRouter(handlers.OpsDeps{Cfg: cfg, Catalog: catalogSvc})
	functions.HTTP("ops", ops.ServeHTTP)

	log.Printf("functions listening on :%s (project=%s, emulator=%v, signedUrls=%v)",
		cfg.Port, cfg.ProjectID, cfg.IsEmulator(), cfg.UseSignedURL)
	if err := funcframework.Start(cfg.Port); err != nil {
		log.Fatalf("funcframework.Start: %v", err)
	}
}
