package service

import "krishi/entities"

type AdvisoryService interface {
	UpsertDocument(title, tags, text, sourceURL string) (*entities.AdvisoryDoc, int, error)
	Search(query string, k int) ([]entities.AdvisoryChunk, error)
	DocsMeta(ids []uint) (map[uint]entities.AdvisoryDoc, error)
}
