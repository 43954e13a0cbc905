package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUploadTokenRoundTrip(t *testing.T) {
	svc := NewCapabilityService("test-secret", 5*time.Minute, time.Hour)

	assetID := uuid.New()
	orgID := uuid.New()
	datasetID := uuid.New()

	token := svc.MintUploadToken(assetID, orgID, datasetID, 1024)
	assert.True(t, svc.VerifyUploadToken(token, assetID, orgID, datasetID, 1024))
}

func TestUploadTokenBindsEveryField(t *testing.T) {
	svc := NewCapabilityService("test-secret", 5*time.Minute, time.Hour)

	assetID := uuid.New()
	orgID := uuid.New()
	datasetID := uuid.New()
	token := svc.MintUploadToken(assetID, orgID, datasetID, 1024)

	assert.False(t, svc.VerifyUploadToken(token, uuid.New(), orgID, datasetID, 1024), "different asset")
	assert.False(t, svc.VerifyUploadToken(token, assetID, uuid.New(), datasetID, 1024), "different org")
	assert.False(t, svc.VerifyUploadToken(token, assetID, orgID, uuid.New(), 1024), "different dataset")
	assert.False(t, svc.VerifyUploadToken(token, assetID, orgID, datasetID, 1025), "different size")
}

func TestUploadTokenRejectsTampering(t *testing.T) {
	svc := NewCapabilityService("test-secret", 5*time.Minute, time.Hour)

	assetID := uuid.New()
	orgID := uuid.New()
	datasetID := uuid.New()
	token := svc.MintUploadToken(assetID, orgID, datasetID, 12)

	// Grow the declared size without re-signing.
	fields := strings.Split(token, ":")
	fields[3] = "999999"
	tampered := strings.Join(fields, ":")
	assert.False(t, svc.VerifyUploadToken(tampered, assetID, orgID, datasetID, 999999))

	// A token signed with a different secret never verifies.
	other := NewCapabilityService("other-secret", 5*time.Minute, time.Hour)
	foreign := other.MintUploadToken(assetID, orgID, datasetID, 12)
	assert.False(t, svc.VerifyUploadToken(foreign, assetID, orgID, datasetID, 12))

	assert.False(t, svc.VerifyUploadToken("", assetID, orgID, datasetID, 12))
	assert.False(t, svc.VerifyUploadToken("garbage", assetID, orgID, datasetID, 12))
}

func TestUploadTokenExpiry(t *testing.T) {
	svc := NewCapabilityService("test-secret", 5*time.Minute, time.Hour)

	assetID := uuid.New()
	orgID := uuid.New()
	datasetID := uuid.New()

	minted := time.Now()
	svc.now = func() time.Time { return minted }
	token := svc.MintUploadToken(assetID, orgID, datasetID, 64)

	svc.now = func() time.Time { return minted.Add(4 * time.Minute) }
	assert.True(t, svc.VerifyUploadToken(token, assetID, orgID, datasetID, 64))

	svc.now = func() time.Time { return minted.Add(6 * time.Minute) }
	assert.False(t, svc.VerifyUploadToken(token, assetID, orgID, datasetID, 64))
}

func TestDownloadTokenAgeWindow(t *testing.T) {
	svc := NewCapabilityService("test-secret", 5*time.Minute, time.Hour)

	assetID := uuid.New()
	orgID := uuid.New()

	minted := time.Now()
	svc.now = func() time.Time { return minted }
	token := svc.MintDownloadToken(assetID, orgID)

	assert.True(t, svc.VerifyDownloadToken(token, assetID, orgID))

	svc.now = func() time.Time { return minted.Add(59 * time.Minute) }
	assert.True(t, svc.VerifyDownloadToken(token, assetID, orgID))

	svc.now = func() time.Time { return minted.Add(61 * time.Minute) }
	assert.False(t, svc.VerifyDownloadToken(token, assetID, orgID))

	// A token "from the future" is as invalid as an expired one.
	svc.now = func() time.Time { return minted.Add(-time.Minute) }
	assert.False(t, svc.VerifyDownloadToken(token, assetID, orgID))
}

func TestDownloadTokenBinding(t *testing.T) {
	svc := NewCapabilityService("test-secret", 5*time.Minute, time.Hour)

	assetID := uuid.New()
	orgID := uuid.New()
	token := svc.MintDownloadToken(assetID, orgID)

	assert.False(t, svc.VerifyDownloadToken(token, uuid.New(), orgID))
	assert.False(t, svc.VerifyDownloadToken(token, assetID, uuid.New()))

	// An upload token is not a download token.
	upload := svc.MintUploadToken(assetID, orgID, uuid.New(), 10)
	assert.False(t, svc.VerifyDownloadToken(upload, assetID, orgID))
}
