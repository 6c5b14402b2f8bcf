package application

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"coursehub/pkg/apperr"
	"coursehub/pkg/helpers"
)

// AvatarStore uploads profile images. Nil disables the avatar endpoint.
type AvatarStore struct {
	Client *storage.Client
	Bucket string
}

// UploadAvatar stores the image and records its public URL on the profile.
func (s *AuthService) UploadAvatar(ctx context.Context, store *AvatarStore, userID string, r io.Reader, filename, contentType string) (*UserView, error) {
	if store == nil || store.Client == nil || store.Bucket == "" {
		return nil, apperr.New(apperr.KindInternal, "AVATAR_STORAGE_DISABLED", "Avatar storage is not configured")
	}
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", userID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, store.Client, store.Bucket, objectPath, contentType, r)
	if err != nil {
		return nil, apperr.Wrap(err, "upload avatar")
	}

	u.Avatar = url
	if err := s.Users.Update(ctx, u); err != nil {
		return nil, err
	}
	return NewUserView(u), nil
}
