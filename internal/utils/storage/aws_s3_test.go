package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKeyLinkRoundTrip(t *testing.T) {
	s3 := &awsS3{bucket: "grocery-receipts", region: "ap-southeast-1"}

	link := s3.GetPublicLinkKey("receipts/bill-abc.jpg")
	assert.Equal(t, "https://grocery-receipts.s3.ap-southeast-1.amazonaws.com/receipts/bill-abc.jpg", link)

	assert.Equal(t, "receipts/bill-abc.jpg", s3.GetObjectKeyFromLink(link))
}

func TestGetObjectKeyFromLinkForeignURL(t *testing.T) {
	s3 := &awsS3{bucket: "grocery-receipts", region: "ap-southeast-1"}

	assert.Empty(t, s3.GetObjectKeyFromLink("https://other-bucket.s3.ap-southeast-1.amazonaws.com/x.jpg"))
	assert.Empty(t, s3.GetObjectKeyFromLink("not a url"))
}
