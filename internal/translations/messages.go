package translations

import (
	"fmt"
	"strings"
)

// MessageID identifies a localized string.
type MessageID int

const (
	General MessageID = iota
	Zoom
	DatabaseFiles
	ParamsNotEditable
	CustomStyle
	Copy
	Port
	InvalidFilters
	Messages
	LinkType
	UnsupportedLinkTypeNotice
	StyleFromFile
	DatabaseFromFile
	FilterByHost
	Service
	ExportCapture
	Directory
	SelectDirectory
	FileName
	ThumbnailMode
	LearnMore
	NetworkAdapter

	messageCount
)

var messageNames = [messageCount]string{
	General:                   "general",
	Zoom:                      "zoom",
	DatabaseFiles:             "database_files",
	ParamsNotEditable:         "params_not_editable",
	CustomStyle:               "custom_style",
	Copy:                      "copy",
	Port:                      "port",
	InvalidFilters:            "invalid_filters",
	Messages:                  "messages",
	LinkType:                  "link_type",
	UnsupportedLinkTypeNotice: "unsupported_link_type",
	StyleFromFile:             "style_from_file",
	DatabaseFromFile:          "database_from_file",
	FilterByHost:              "filter_by_host",
	Service:                   "service",
	ExportCapture:             "export_capture",
	Directory:                 "directory",
	SelectDirectory:           "select_directory",
	FileName:                  "file_name",
	ThumbnailMode:             "thumbnail_mode",
	LearnMore:                 "learn_more",
	NetworkAdapter:            "network_adapter",
}

func (id MessageID) String() string {
	if id < 0 || id >= messageCount {
		return fmt.Sprintf("message(%d)", int(id))
	}
	return messageNames[id]
}

// MessageIDs lists every message identifier.
func MessageIDs() []MessageID {
	out := make([]MessageID, 0, messageCount)
	for id := MessageID(0); id < messageCount; id++ {
		out = append(out, id)
	}
	return out
}

// ParseMessageID resolves a snake_case message name.
func ParseMessageID(name string) (MessageID, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for id, candidate := range messageNames {
		if candidate == normalized {
			return MessageID(id), nil
		}
	}
	return 0, fmt.Errorf("unknown message %q", name)
}
