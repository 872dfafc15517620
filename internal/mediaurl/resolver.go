// Package mediaurl turns stored objects into client-facing URLs. Three
// strategies exist: the plain public URL (emulator), a long-lived
// token-based download URL, and a short-lived V4 signed URL.
package mediaurl

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	credentials "cloud.google.com/go/iam/credentials/apiv1"
	credentialspb "cloud.google.com/go/iam/credentials/apiv1/credentialspb"
	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// Resolver resolves a stored object to a URL the catalog can reference.
type Resolver interface {
	PublicURL(bucket, object string) string
	DownloadURL(ctx context.Context, bucket, object string) (string, error)
	SignedURL(ctx context.Context, bucket, object string) (string, error)
}

// Objects store their download tokens in this metadata key, comma-separated.
const downloadTokensKey = "firebaseStorageDownloadTokens"

const defaultSignedURLExpiry = 15 * time.Minute

// GCS resolves URLs against Cloud Storage. The IAM credentials client and
// service account email are only needed for signed URLs when no private key
// is available locally.
type GCS struct {
	client              *storage.Client
	iam                 *credentials.IamCredentialsClient
	serviceAccountEmail string
	expiry              time.Duration
}

func NewGCS(client *storage.Client, iam *credentials.IamCredentialsClient, serviceAccountEmail string, expiry time.Duration) *GCS {
	if expiry <= 0 {
		expiry = defaultSignedURLExpiry
	}
	return &GCS{
		client:              client,
		iam:                 iam,
		serviceAccountEmail: serviceAccountEmail,
		expiry:              expiry,
	}
}

func (g *GCS) PublicURL(bucket, object string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, object)
}

// DownloadURL returns the long-lived token URL for an object. When the
// object has no download token yet, one is minted and persisted on its
// metadata so the URL stays stable across events.
func (g *GCS) DownloadURL(ctx context.Context, bucket, object string) (string, error) {
	obj := g.client.Bucket(bucket).Object(object)

	attrs, err := obj.Attrs(ctx)
	if err != nil {
		return "", fmt.Errorf("object attrs %s/%s: %w", bucket, object, err)
	}

	token := firstToken(attrs.Metadata[downloadTokensKey])
	if token == "" {
		token = uuid.NewString()
		md := make(map[string]string, len(attrs.Metadata)+1)
		for k, v := range attrs.Metadata {
			md[k] = v
		}
		md[downloadTokensKey] = token
		if _, err := obj.Update(ctx, storage.ObjectAttrsToUpdate{Metadata: md}); err != nil {
			return "", fmt.Errorf("persist download token %s/%s: %w", bucket, object, err)
		}
	}

	return downloadURLFor(bucket, object, token), nil
}

// SignedURL returns a time-limited V4 read URL. Without a local private
// key, signing goes through the IAM credentials SignBlob API under the
// configured service account.
func (g *GCS) SignedURL(ctx context.Context, bucket, object string) (string, error) {
	opts := &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  "GET",
		Expires: time.Now().Add(g.expiry),
	}

	if g.serviceAccountEmail != "" && g.iam != nil {
		opts.GoogleAccessID = g.serviceAccountEmail
		opts.SignBytes = func(b []byte) ([]byte, error) {
			name := fmt.Sprintf("projects/-/serviceAccounts/%s", g.serviceAccountEmail)
			resp, err := g.iam.SignBlob(ctx, &credentialspb.SignBlobRequest{
				Name:    name,
				Payload: b,
			})
			if err != nil {
				return nil, err
			}
			return resp.SignedBlob, nil
		}
	}

	u, err := g.client.Bucket(bucket).SignedURL(object, opts)
	if err != nil {
		return "", fmt.Errorf("sign read url %s/%s: %w", bucket, object, err)
	}
	return u, nil
}

func downloadURLFor(bucket, object, token string) string {
	return fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media&token=%s",
		bucket, url.PathEscape(object), token)
}

func firstToken(tokens string) string {
	for _, t := range strings.Split(tokens, ",") {
		if t = strings.TrimSpace(t); t != "" {
			return t
		}
	}
	return ""
}
