// Package qr renders friend-invite QR codes.
package qr

import (
	"fmt"
	"net/url"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/haebit/haebit/internal/constants"
)

// InvitePayload encodes a friend invite as a haebit://friend URL. Scanning
// apps parse the query parameters back out with ParseInvite.
func InvitePayload(userID, nickname string) string {
	q := url.Values{}
	q.Set("id", userID)
	if nickname != "" {
		q.Set("name", nickname)
	}
	return constants.QRScheme + "?" + q.Encode()
}

// ParseInvite decodes a payload produced by InvitePayload.
func ParseInvite(payload string) (userID, nickname string, err error) {
	if !strings.HasPrefix(payload, constants.QRScheme+"?") {
		return "", "", fmt.Errorf("not a friend invite payload")
	}

	q, err := url.ParseQuery(strings.TrimPrefix(payload, constants.QRScheme+"?"))
	if err != nil {
		return "", "", fmt.Errorf("malformed invite payload: %w", err)
	}

	userID = q.Get("id")
	if userID == "" {
		return "", "", fmt.Errorf("invite payload missing user id")
	}
	return userID, q.Get("name"), nil
}

// WriteInvitePNG writes a PNG QR code for the given invite to path.
func WriteInvitePNG(userID, nickname, path string) error {
	payload := InvitePayload(userID, nickname)
	if err := qrcode.WriteFile(payload, qrcode.Medium, constants.QRSize, path); err != nil {
		return fmt.Errorf("failed to write QR code: %w", err)
	}
	return nil
}

// InviteString renders the invite as a terminal-friendly block string.
func InviteString(userID, nickname string) (string, error) {
	code, err := qrcode.New(InvitePayload(userID, nickname), qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to build QR code: %w", err)
	}
	return code.ToSmallString(false), nil
}
