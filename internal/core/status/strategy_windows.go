//go:build windows

package status

import (
	"os"

	"golang.org/x/sys/windows"

	"github.com/oceanbgc/boxpath/internal/domain"
)

// nativeStrategy returns the file-attribute strategy on Windows, where
// sync clients mark placeholders with offline/recall attributes.
func nativeStrategy() Strategy {
	return attributeStrategy{}
}

// placeholderAttributes are the attribute bits cloud filter drivers set on
// entries whose content lives remotely.
const placeholderAttributes = windows.FILE_ATTRIBUTE_OFFLINE |
	windows.FILE_ATTRIBUTE_RECALL_ON_DATA_ACCESS |
	windows.FILE_ATTRIBUTE_RECALL_ON_OPEN

type attributeStrategy struct{}

func (attributeStrategy) Classify(path string, info os.FileInfo) (domain.SyncState, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return domain.StateUnknown, err
	}

	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return domain.StateUnknown, err
	}

	if attrs&placeholderAttributes != 0 {
		return domain.StateOnlineOnly, nil
	}
	return domain.StateFullySynced, nil
}
