package rdf2vec

import (
	"math"
	"math/rand"
	"runtime"
	"sync"
)

// EmbedConfig tunes the word-embedding trainer. There is no third-party
// word2vec implementation in the dependency pack, so training is original
// code; see DESIGN.md for the grounding note on this component.
type EmbedConfig struct {
	VectorSize int
	Window     int
	MinCount   int
	Epochs     int
	Workers    int
	Seed       int64
}

// DefaultEmbedConfig matches spec §4.5 step 5: vector size 100, window 5,
// min count 1.
func DefaultEmbedConfig() EmbedConfig {
	return EmbedConfig{
		VectorSize: 100,
		Window:     5,
		MinCount:   1,
		Epochs:     5,
		Workers:    runtime.NumCPU(),
		Seed:       1,
	}
}

// WordVectors holds one dense vector per vocabulary token.
type WordVectors struct {
	Dim     int
	vectors map[string][]float32
}

// Vector returns the trained vector for term, and whether term is in
// vocabulary.
func (w *WordVectors) Vector(term string) ([]float32, bool) {
	v, ok := w.vectors[term]
	return v, ok
}

type vocabEntry struct {
	index int
	count int
}

// trainEmbeddings fits skip-gram vectors with negative sampling over
// sentences. The trained matrices are shared across worker goroutines and
// guarded by a mutex per update; spec §5 only promises a fixed-size worker
// pool for this step, not lock-free throughput.
func trainEmbeddings(sentences [][]string, cfg EmbedConfig) *WordVectors {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Epochs <= 0 {
		cfg.Epochs = 1
	}

	vocab := make(map[string]*vocabEntry)
	for _, sent := range sentences {
		for _, tok := range sent {
			e, ok := vocab[tok]
			if !ok {
				e = &vocabEntry{index: len(vocab)}
				vocab[tok] = e
			}
			e.count++
		}
	}
	for tok, e := range vocab {
		if e.count < cfg.MinCount {
			delete(vocab, tok)
		}
	}
	tokens := make([]string, 0, len(vocab))
	for tok, e := range vocab {
		e.index = len(tokens)
		tokens = append(tokens, tok)
	}

	n := len(tokens)
	rng := rand.New(rand.NewSource(cfg.Seed))
	in := make([][]float32, n)
	out := make([][]float32, n)
	for i := range in {
		in[i] = randomVector(rng, cfg.VectorSize)
		out[i] = make([]float32, cfg.VectorSize)
	}

	var mu sync.Mutex
	lr := float32(0.025)

	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		chunks := splitSentences(sentences, cfg.Workers)
		var wg sync.WaitGroup
		for w, chunk := range chunks {
			chunk := chunk
			workerRNG := rand.New(rand.NewSource(cfg.Seed + int64(epoch*1000+w) + 1))
			wg.Add(1)
			go func() {
				defer wg.Done()
				trainChunk(chunk, vocab, in, out, n, cfg.Window, lr, &mu, workerRNG)
			}()
		}
		wg.Wait()
	}

	vectors := make(map[string][]float32, n)
	for tok, e := range vocab {
		vectors[tok] = in[e.index]
	}
	return &WordVectors{Dim: cfg.VectorSize, vectors: vectors}
}

func trainChunk(sentences [][]string, vocab map[string]*vocabEntry, in, out [][]float32, vocabSize, window int, lr float32, mu *sync.Mutex, rng *rand.Rand) {
	const negativeSamples = 5

	for _, sent := range sentences {
		indices := make([]int, 0, len(sent))
		for _, tok := range sent {
			e, ok := vocab[tok]
			if !ok {
				continue
			}
			indices = append(indices, e.index)
		}

		for pos, target := range indices {
			lo := pos - window
			if lo < 0 {
				lo = 0
			}
			hi := pos + window
			if hi >= len(indices) {
				hi = len(indices) - 1
			}
			for ctx := lo; ctx <= hi; ctx++ {
				if ctx == pos {
					continue
				}
				context := indices[ctx]
				mu.Lock()
				updatePair(in[target], out[context], 1, lr)
				for neg := 0; neg < negativeSamples && vocabSize > 1; neg++ {
					negIdx := rng.Intn(vocabSize)
					if negIdx == context {
						continue
					}
					updatePair(in[target], out[negIdx], 0, lr)
				}
				mu.Unlock()
			}
		}
	}
}

// updatePair applies one skip-gram-with-negative-sampling gradient step
// between an input vector and an output vector toward label (1 = positive
// pair, 0 = negative sample).
func updatePair(inVec, outVec []float32, label float32, lr float32) {
	var dot float32
	for i := range inVec {
		dot += inVec[i] * outVec[i]
	}
	pred := sigmoid(dot)
	grad := (label - pred) * lr

	for i := range inVec {
		inI := inVec[i]
		inVec[i] += grad * outVec[i]
		outVec[i] += grad * inI
	}
}

func sigmoid(x float32) float32 {
	return float32(1 / (1 + math.Exp(float64(-x))))
}

func randomVector(rng *rand.Rand, dim int) []float32 {
	v := make([]float32, dim)
	for i := range v {
		v[i] = (rng.Float32() - 0.5) / float32(dim)
	}
	return v
}

func splitSentences(sentences [][]string, workers int) [][][]string {
	if workers > len(sentences) {
		workers = len(sentences)
	}
	if workers <= 0 {
		return [][][]string{sentences}
	}
	chunks := make([][][]string, workers)
	for i, sent := range sentences {
		w := i % workers
		chunks[w] = append(chunks[w], sent)
	}
	return chunks
}
