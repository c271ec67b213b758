package export

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/bwmarrin/discordgo"
)

// WriteSnapshot writes one timestamped CSV file with all rows of the cycle
// and returns its path.
func WriteSnapshot(dir string, rows [][]string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("submissions_%s.csv", time.Now().Format("20060102_150405")))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(SnapshotHeader); err != nil {
		return "", err
	}
	if err := w.WriteAll(rows); err != nil {
		return "", err
	}
	w.Flush()
	return path, w.Error()
}

// forwardSnapshot attaches the snapshot file to the log channel.
// Best-effort: a transport failure is logged and swallowed.
func forwardSnapshot(s *discordgo.Session, channelID, path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("Failed to open snapshot for forwarding: %v", err)
		return
	}
	defer f.Close()

	_, err = s.ChannelFileSend(channelID, filepath.Base(path), f)
	if err != nil {
		log.Printf("Failed to forward snapshot to log channel: %v", err)
	}
}
