package config_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/chatnotify/pkg/config"
)

var _ = Describe("Color", func() {
	It("should encode a valid color as an integer", func() {
		data, err := json.Marshal(config.RGBColor(0xFFC400))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("16761856"))
	})

	It("should encode none as a string", func() {
		data, err := json.Marshal(config.NoColor())
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal(`"none"`))
	})

	It("should decode both forms", func() {
		var c config.Color

		Expect(json.Unmarshal([]byte(`255`), &c)).To(Succeed())
		Expect(c).To(Equal(config.Color{RGB: 255, Valid: true}))

		Expect(json.Unmarshal([]byte(`"none"`), &c)).To(Succeed())
		Expect(c.Valid).To(BeFalse())
	})

	It("should reject other strings", func() {
		var c config.Color

		Expect(json.Unmarshal([]byte(`"red"`), &c)).NotTo(Succeed())
	})

	It("should format as hex", func() {
		Expect(config.RGBColor(0xFFC400).Hex()).To(Equal("#FFC400"))
		Expect(config.NoColor().Hex()).To(Equal("none"))
	})
})

var _ = Describe("TextStyle", func() {
	It("should inherit the default color and leave flags off", func() {
		resolved := config.TextStyle{}.Resolve(0x123456)

		Expect(resolved.Color).To(Equal(config.Color{RGB: 0x123456, Valid: true}))
		Expect(resolved.Bold).To(BeFalse())
		Expect(resolved.Obfuscated).To(BeFalse())
	})

	It("should keep explicit values", func() {
		style := config.TextStyle{Color: config.NoColor(), Bold: config.Bool(true)}
		resolved := style.Resolve(0x123456)

		Expect(resolved.Color.Valid).To(BeFalse())
		Expect(resolved.Bold).To(BeTrue())
	})

	It("should omit inherited fields in JSON", func() {
		data, err := json.Marshal(config.TextStyle{Version: 1, Italic: config.Bool(false)})
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal(`{"version":1,"italic":false}`))
	})
})

var _ = Describe("Sound", func() {
	It("should add the default namespace", func() {
		Expect(config.DefaultSound().ResourceLocation()).To(Equal("minecraft:block.note_block.bell"))
	})

	It("should keep an explicit namespace", func() {
		s := config.Sound{ID: "mymod:ding"}
		Expect(s.ResourceLocation()).To(Equal("mymod:ding"))
	})

	It("should be silent when disabled or muted", func() {
		s := config.DefaultSound()
		Expect(s.IsAudible()).To(BeTrue())

		s.Volume = 0
		Expect(s.IsAudible()).To(BeFalse())

		s = config.DefaultSound()
		s.Enabled = false
		Expect(s.IsAudible()).To(BeFalse())
	})
})

var _ = Describe("SoundSource", func() {
	It("should round-trip through its name", func() {
		for _, src := range config.SoundSourceValues() {
			parsed, err := config.SoundSourceString(src.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(Equal(src))
		}
	})

	It("should accept lower case names", func() {
		src, err := config.SoundSourceString("players")
		Expect(err).NotTo(HaveOccurred())
		Expect(src).To(Equal(config.SoundSourcePlayers))
	})

	It("should reject unknown names", func() {
		_, err := config.SoundSourceString("LOUD")
		Expect(err).To(HaveOccurred())
	})
})
