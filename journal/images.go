// journal/images.go
package journal

import (
	"github.com/wzgold/tradelog/pkg/id"
	"github.com/wzgold/tradelog/store"
)

// PutImage stores an opaque image blob and returns its id. The journal never
// inspects the bytes; they come from whatever picked the file.
func (j *Journal) PutImage(data []byte) (string, error) {
	if len(data) == 0 {
		return "", invalid("image", "must not be empty")
	}
	imgID := id.New()
	if err := j.st.Add(store.TradeImages, imgID, "", data); err != nil {
		return "", err
	}
	return imgID, nil
}

// GetImage returns the image bytes, or nil when the id is absent.
func (j *Journal) GetImage(imageID string) ([]byte, error) {
	data, found, err := j.st.Get(store.TradeImages, imageID)
	if err != nil || !found {
		return nil, err
	}
	return data, nil
}

// AttachBeforeImage stores data as the trade's before-screenshot, deleting
// any image it previously referenced. The trade record itself is not
// persisted; call UpdateTrade (or AddTrade) afterwards.
func (j *Journal) AttachBeforeImage(t *Trade, data []byte) error {
	imgID, err := j.replaceImage(t.ScreenshotBeforeID, data)
	if err != nil {
		return err
	}
	t.ScreenshotBeforeID = imgID
	return nil
}

// AttachAfterImage is AttachBeforeImage for the after-screenshot.
func (j *Journal) AttachAfterImage(t *Trade, data []byte) error {
	imgID, err := j.replaceImage(t.ScreenshotAfterID, data)
	if err != nil {
		return err
	}
	t.ScreenshotAfterID = imgID
	return nil
}

func (j *Journal) replaceImage(oldID string, data []byte) (string, error) {
	if oldID != "" {
		if err := j.st.Remove(store.TradeImages, oldID); err != nil {
			return "", err
		}
	}
	return j.PutImage(data)
}
