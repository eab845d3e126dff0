// Package scan extracts mod entities from compiled classfiles and recipe
// JSON documents.
//
// Classfile scanning is deliberately not a bytecode disassembler: item
// attributes are recovered by matching a fixed set of byte-level patterns
// against the raw class bytes (string-constant table included). The scanner
// is a best-effort heuristic — an attribute that does not match leaves its
// default, and no input ever makes the scanner fail.
package scan

import (
	"encoding/hex"
	"path"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/zeebo/blake3"

	"github.com/masterotaku487-arch/Transformar/core/cache"
	"github.com/masterotaku487-arch/Transformar/core/mod"
)

var (
	// register("ruby_sword") — the literal is the item id. Identifiers are
	// case-sensitive; everything around them is not.
	reRegister = regexp.MustCompile(`(?i:register)\(\s*"([a-z0-9_./]+)"\s*\)`)

	// stacksTo(16)
	reStacksTo = regexp.MustCompile(`(?i)stacksTo\s*\(\s*(\d+)\s*\)`)

	// durability(250)
	reDurability = regexp.MustCompile(`(?i)durability\s*\(\s*(\d+)\s*\)`)

	// fireResistant()
	reFireResistant = regexp.MustCompile(`(?i)fireResistant\s*\(\s*\)`)

	// new SwordItem(Tiers.IRON, 3, ...) / new AxeItem(...) — the first
	// integer literal in the argument list is the attack damage.
	reWeapon   = regexp.MustCompile(`(?i)new\s+(?:Sword|Axe)Item\s*\(([^)]*)\)`)
	reFirstInt = regexp.MustCompile(`-?\d+`)

	// rarity(Rarity.EPIC)
	reRarity = regexp.MustCompile(`(?i)rarity\s*\(\s*Rarity\.([A-Za-z]+)\s*\)`)

	// nutrition(4).saturationMod(0.3f) — also matched separately so a
	// builder split across constants still yields partial food data.
	reNutrition  = regexp.MustCompile(`(?i)nutrition\s*\(\s*(\d+)\s*\)`)
	reSaturation = regexp.MustCompile(`(?i)saturationMod\s*\(\s*(\d*\.?\d+)f?\s*\)`)
)

// Digest returns the lowercase hex BLAKE3 digest of data. Scan caches and
// the result descriptor use this as their content key.
func Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Store is a persistent scan-result store keyed by class digest. It fronts
// repeated conversions of overlapping mods; see internal/scancache.
type Store interface {
	Get(digest string) (*mod.Item, bool, error)
	Put(digest string, item *mod.Item) error
}

// Scanner extracts item attributes from classfile bytes. The zero value is
// not usable; call NewScanner.
type Scanner struct {
	cache *cache.ScanCache
	store Store
}

// NewScanner creates a scanner with an in-memory result cache.
func NewScanner() *Scanner {
	return &Scanner{cache: cache.NewDefaultScanCache()}
}

// SetStore attaches a persistent scan-result store. The in-memory cache
// still fronts it.
func (s *Scanner) SetStore(store Store) {
	s.store = store
}

// ScanClass extracts a partial Item from the raw bytes of the classfile at
// entryPath. Attributes absent from the bytes keep their defaults; when no
// register("…") literal is present, the id is derived from the class name.
// The returned item is owned by the caller and safe to mutate.
//
// Cache keys combine the content digest with the class-name fallback id, so
// identical bytes under differently named classes never share an identity.
func (s *Scanner) ScanClass(entryPath string, data []byte) *mod.Item {
	key := Digest(data) + ":" + ClassNameToID(entryPath)

	if cached, ok := s.cache.Get(key); ok {
		return cloneItem(cached)
	}
	if s.store != nil {
		if stored, ok, err := s.store.Get(key); err == nil && ok {
			s.cache.Put(key, stored)
			return cloneItem(stored)
		}
	}

	item := scanClassBytes(entryPath, data)

	s.cache.Put(key, item)
	if s.store != nil {
		// Store failures are ignored; the cache is an optimization.
		_ = s.store.Put(key, item)
	}
	return cloneItem(item)
}

func scanClassBytes(entryPath string, data []byte) *mod.Item {
	id := ""
	if m := reRegister.FindSubmatch(data); m != nil {
		id = literalToID(string(m[1]))
	}
	if id == "" {
		id = ClassNameToID(entryPath)
	}
	item := mod.NewItem(id)

	if m := reStacksTo.FindSubmatch(data); m != nil {
		if n, err := strconv.Atoi(string(m[1])); err == nil {
			item.StackMax = clampInt(n, 1, mod.MaxStackSize)
		}
	}

	if m := reDurability.FindSubmatch(data); m != nil {
		if n, err := strconv.Atoi(string(m[1])); err == nil && n >= 0 {
			item.Durability = clampInt(n, 0, mod.MaxDurability)
		}
	}

	if reFireResistant.Match(data) {
		item.IgnoresDamage = true
		item.Rarity = item.Rarity.Bump()
	}

	if m := reWeapon.FindSubmatch(data); m != nil {
		item.Tool = true
		item.StackMax = 1
		if arg := reFirstInt.Find(m[1]); arg != nil {
			if n, err := strconv.Atoi(string(arg)); err == nil && n > 0 {
				item.AttackDamage = n
			}
		}
	}

	if m := reRarity.FindSubmatch(data); m != nil {
		if r := mod.Rarity(strings.ToLower(string(m[1]))); r.IsValid() {
			item.Rarity = r
		}
	}

	if m := reNutrition.FindSubmatch(data); m != nil {
		if n, err := strconv.Atoi(string(m[1])); err == nil {
			item.Edible = true
			item.Nutrition = n
		}
	}
	if m := reSaturation.FindSubmatch(data); m != nil {
		if f, err := strconv.ParseFloat(string(m[1]), 64); err == nil {
			item.Edible = true
			item.Saturation = f
		}
	}

	return item
}

// literalToID keeps the last path segment of a registry literal
// ("tools/ruby_sword" registers "ruby_sword").
func literalToID(lit string) string {
	if idx := strings.LastIndexByte(lit, '/'); idx >= 0 {
		lit = lit[idx+1:]
	}
	lit = strings.ReplaceAll(lit, ".", "_")
	if !mod.IsSnake(lit) {
		return ""
	}
	return lit
}

// ClassNameToID derives an item id from a classfile path by splitting the
// camel-case class name into lowercase snake ("RubySword.class" scans as
// "ruby_sword"). Inner-class suffixes are dropped.
func ClassNameToID(entryPath string) string {
	name := strings.TrimSuffix(path.Base(entryPath), ".class")
	if idx := strings.IndexByte(name, '$'); idx >= 0 {
		name = name[:idx]
	}

	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		if unicode.IsLower(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			continue
		}
		// Anything else acts as a separator.
		if i > 0 {
			b.WriteByte('_')
		}
	}

	id := strings.Trim(b.String(), "_")
	for strings.Contains(id, "__") {
		id = strings.ReplaceAll(id, "__", "_")
	}
	if id == "" {
		return "item"
	}
	return id
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func cloneItem(i *mod.Item) *mod.Item {
	c := *i
	return &c
}
