// Package qrpass renders the QR leave pass handed out for approved requests.
package qrpass

import (
	"errors"
	"fmt"

	"leave-tracking/models"

	qrcode "github.com/skip2/go-qrcode"
)

const defaultSize = 256

var ErrNotApproved = errors.New("leave pass is only available for approved requests")

// Content is the text encoded in the pass. Front-desk scanners look the
// request up by id and compare the dates.
func Content(req *models.LeaveRequest) string {
	return fmt.Sprintf("LEAVE-PASS|%s|%s|%s|%s|%s",
		req.ID.Hex(), req.RequesterID.Hex(), req.LeaveType, req.FromDate, req.ToDate)
}

func PNG(req *models.LeaveRequest, size int) ([]byte, error) {
	if req.Status != models.LeaveStatusApproved {
		return nil, ErrNotApproved
	}
	if size <= 0 {
		size = defaultSize
	}
	png, err := qrcode.Encode(Content(req), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode leave pass: %w", err)
	}
	return png, nil
}
