package app

import (
	"encoding/binary"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/gonewx/skydefense/pkg/utils"
)

const (
	// soundSampleRate 音频采样率
	soundSampleRate = 44100

	soundFire  = "fire"
	soundBlast = "blast"

	soundVolume = 0.5
)

// soundBank 合成音效库
// 音效在启动时合成为 16 位立体声 PCM，不依赖任何音频文件。
// ctx 为 nil 时所有播放请求都被忽略（静音）
type soundBank struct {
	ctx    *audio.Context
	sounds map[string][]byte
}

// newSoundBank 创建音效库并合成所有音效
//
// 参数:
//   - ctx: 音频上下文，为 nil 表示静音
func newSoundBank(ctx *audio.Context) *soundBank {
	return &soundBank{
		ctx: ctx,
		sounds: map[string][]byte{
			soundFire:  synthChirp(soundSampleRate, 0.08, 900, 300),
			soundBlast: synthNoiseBurst(soundSampleRate, 0.4, utils.NewRandomSource(1)),
		},
	}
}

// play 播放一次音效
//
// 返回:
//   - bool: 是否成功播放
func (b *soundBank) play(name string) bool {
	if b.ctx == nil {
		return false
	}
	data, ok := b.sounds[name]
	if !ok {
		log.Printf("[Sound] Warning: unknown sound %q", name)
		return false
	}
	player := b.ctx.NewPlayerFromBytes(data)
	player.SetVolume(soundVolume)
	player.Play()
	return true
}

// synthChirp 合成从 fromHz 滑到 toHz 的正弦音
func synthChirp(sampleRate int, seconds, fromHz, toHz float64) []byte {
	n := int(float64(sampleRate) * seconds)
	samples := make([]float64, n)
	phase := 0.0
	for i := range samples {
		t := float64(i) / float64(n)
		freq := fromHz + (toHz-fromHz)*t
		phase += 2 * math.Pi * freq / float64(sampleRate)
		samples[i] = math.Sin(phase) * (1 - t)
	}
	return encodePCM16(samples)
}

// synthNoiseBurst 合成指数衰减的噪声，并做一阶低通让爆炸声更沉
func synthNoiseBurst(sampleRate int, seconds float64, rng utils.RandomSource) []byte {
	n := int(float64(sampleRate) * seconds)
	samples := make([]float64, n)
	prev := 0.0
	for i := range samples {
		t := float64(i) / float64(sampleRate)
		noise := rng.Float64()*2 - 1
		prev += 0.2 * (noise - prev)
		samples[i] = prev * math.Exp(-t*8)
	}
	return encodePCM16(samples)
}

// encodePCM16 将 [-1, 1] 的单声道样本编码为 16 位小端立体声
func encodePCM16(samples []float64) []byte {
	out := make([]byte, len(samples)*4)
	for i, s := range samples {
		s = math.Max(-1, math.Min(1, s))
		v := uint16(int16(s * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*4:], v)
		binary.LittleEndian.PutUint16(out[i*4+2:], v)
	}
	return out
}
