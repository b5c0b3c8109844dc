package serviceImp

import (
	"math"
	"sort"
	"strings"

	"krishi/entities"
	"krishi/pkg/advisory/embedder"
	"krishi/pkg/advisory/repository"
)

type Svc struct {
	r   repository.AdvisoryRepository
	emb *embedder.Client
}

func New(r repository.AdvisoryRepository, e *embedder.Client) *Svc { return &Svc{r: r, emb: e} }

func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 { maxRunes = 1000 }
	parts := []string{}
	cur := strings.Builder{}
	count := 0
	for _, r := range text {
		cur.WriteRune(r); count++
		if count >= maxRunes && r == '\n' { parts = append(parts, cur.String()); cur.Reset(); count = 0 }
	}
	if cur.Len() > 0 { parts = append(parts, cur.String()) }
	return parts
}

func (s *Svc) UpsertDocument(title, tags, text, sourceURL string) (*entities.AdvisoryDoc, int, error) {
	d := &entities.AdvisoryDoc{Title: title, Tags: tags, SourceURL: sourceURL}
	if err := s.r.CreateDoc(d); err != nil { return nil, 0, err }

	chs := chunkText(text, 1000)
	if len(chs) == 0 { return d, 0, nil }

	var embs [][]float32
	if s.emb.Enabled() {
		// degrade gracefully: keep chunks with empty embeddings on failure
		embs, _ = s.emb.Embed(chs)
	}

	rows := make([]entities.AdvisoryChunk, len(chs))
	for i := range chs {
		var embBytes []byte
		if embs != nil && i < len(embs) {
			embBytes = embedder.FloatsToBytes(embs[i])
		}
		rows[i] = entities.AdvisoryChunk{DocID: d.DocID, Ord: i, Text: chs[i], Embedding: embBytes}
	}
	if err := s.r.BulkInsertChunks(rows); err != nil { return nil, 0, err }
	return d, len(rows), nil
}

// Search ranks chunks by embedding similarity when vectors exist, otherwise
// by keyword overlap against chunk text and the parent doc's tags. The
// recommendation service queries it with deficiency/crop/fertilizer terms.
func (s *Svc) Search(query string, k int) ([]entities.AdvisoryChunk, error) {
	q := strings.TrimSpace(query)
	if q == "" || k <= 0 {
		return nil, nil
	}

	var qvec []float32
	if s.emb.Enabled() {
		if vec, err := s.emb.Embed([]string{q}); err == nil && len(vec) > 0 {
			qvec = vec[0]
		}
	}

	chunks, err := s.r.AllChunks()
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	var tagsByDoc map[uint]string
	if len(qvec) == 0 {
		docs, _ := s.r.ListDocs()
		tagsByDoc = make(map[uint]string, len(docs))
		for _, d := range docs {
			tagsByDoc[d.DocID] = strings.ToLower(d.Tags + " " + d.Title)
		}
	}

	type scored struct {
		ch entities.AdvisoryChunk
		sc float64
	}
	list := make([]scored, 0, len(chunks))

	if len(qvec) > 0 {
		for _, ch := range chunks {
			v := embedder.BytesToFloats(ch.Embedding)
			if sc := cosine(qvec, v); sc > 0 {
				list = append(list, scored{ch, sc})
			}
		}
	} else {
		terms := strings.Fields(strings.ToLower(q))
		for _, ch := range chunks {
			text := strings.ToLower(ch.Text)
			meta := tagsByDoc[ch.DocID]
			sc := 0.0
			for _, t := range terms {
				if strings.Contains(text, t) {
					sc += 1.0
				}
				if strings.Contains(meta, t) {
					sc += 0.5 // tag/title hits count less than body hits
				}
			}
			if sc > 0 {
				list = append(list, scored{ch, sc})
			}
		}
	}

	if len(list) == 0 {
		return nil, nil
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].sc > list[j].sc })
	if k > len(list) {
		k = len(list)
	}
	out := make([]entities.AdvisoryChunk, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, list[i].ch)
	}
	return out, nil
}

func cosine(a, b []float32) float64 {
	var dot, na, nb float64
	for i := 0; i < len(a) && i < len(b); i++ {
		dot += float64(a[i] * b[i]); na += float64(a[i]*a[i]); nb += float64(b[i]*b[i])
	}
	if na == 0 || nb == 0 { return 0 }
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func (s *Svc) DocsMeta(ids []uint) (map[uint]entities.AdvisoryDoc, error) {
	return s.r.DocsByIDs(ids)
}
