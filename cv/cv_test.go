package cv

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSearch_SingleHighlightTerm(t *testing.T) {
	res := Default().Search("Terrablob", nil)

	require.Len(t, res.Matches, 1)
	assert.Equal(t, "experience at Uber (2021-now)", res.Matches[0].Section)
	assert.Contains(t, res.Matches[0].Content, "Terrablob")
}

func TestSearch_NoMatchesEncodesEmptyArray(t *testing.T) {
	res := Default().Search("term-that-appears-nowhere-xyz", nil)
	assert.Empty(t, res.Matches)

	b, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"matches":[]}`, string(b))
}

func TestSearch_EmptyQueryMatchesEverySection(t *testing.T) {
	data := Default()
	res := data.Search("", nil)

	require.Len(t, res.Matches, 7+len(data.Experience))
	assert.Equal(t, "profile", res.Matches[0].Section)
	assert.Equal(t, data.Profile.Description, res.Matches[0].Content)
	assert.Equal(t, "keywords", res.Matches[len(res.Matches)-1].Section)
	assert.Equal(t, strings.Join(data.Keywords, ", "), res.Matches[len(res.Matches)-1].Content)
}

func TestSearch_EducationFormatting(t *testing.T) {
	res := Default().Search("amirkabir", nil)

	require.Len(t, res.Matches, 1)
	assert.Equal(t, "education", res.Matches[0].Section)
	assert.Equal(t,
		"B.Sc. in Computer Software Engineering from AmirKabir University (2001)\nM.Sc. in Management from AmirKabir University (2003)",
		res.Matches[0].Content)
}

func TestSearch_LinksFormatting(t *testing.T) {
	res := Default().Search("WELLFOUND", nil)

	require.Len(t, res.Matches, 1)
	assert.Equal(t, "links", res.Matches[0].Section)
	assert.Equal(t, "Wellfound: https://wellfound.com/u/frank-goortani", res.Matches[0].Content)
}

func TestSearch_HeaderOnlyExperienceMatch(t *testing.T) {
	res := Default().Search("Faragam", nil)

	require.Len(t, res.Matches, 1)
	assert.Equal(t, "experience at Faragam Inc. (2002-2006)", res.Matches[0].Section)
	assert.Equal(t, "DEVELOPER at Faragam Inc., 2002-2006", res.Matches[0].Content)
}

func TestSearch_ReportsProgressPerSection(t *testing.T) {
	var calls [][2]int
	Default().Search("python", func(done, total int) {
		calls = append(calls, [2]int{done, total})
	})

	require.Len(t, calls, SearchSections)
	for i, c := range calls {
		assert.Equal(t, i+1, c[0])
		assert.Equal(t, SearchSections, c[1])
	}
}

func TestSearch_SectionOrder(t *testing.T) {
	res := Default().Search("python", nil)

	var sections []string
	for _, m := range res.Matches {
		sections = append(sections, m.Section)
	}
	require.NotEmpty(t, sections)
	assert.Equal(t, "skills", sections[0])
	assert.Equal(t, "interests", sections[1])
	assert.Equal(t, "keywords", sections[len(sections)-1])
}

func TestCompanyExperience(t *testing.T) {
	res := Default().CompanyExperience("Uber")
	require.True(t, res.Found)
	require.NotEmpty(t, res.Experiences)
	assert.Equal(t, "Uber", res.Experiences[0].Company)

	miss := Default().CompanyExperience("NonExistentCo")
	assert.False(t, miss.Found)
	assert.Empty(t, miss.Experiences)
	assert.Equal(t, "No experience found for company: NonExistentCo", miss.Message)
}

func TestCompanyExperience_EmptyReturnsEveryPosition(t *testing.T) {
	res := Default().CompanyExperience("")
	require.True(t, res.Found)
	assert.Equal(t, Default().Experience, res.Experiences)
}

func TestCompanyExperience_CaseInsensitivePartial(t *testing.T) {
	res := Default().CompanyExperience("td bank")
	require.True(t, res.Found)
	assert.Len(t, res.Experiences, 2)
}

func TestCategoryStack(t *testing.T) {
	ts, ok := Default().CategoryStack("Languages")
	require.True(t, ok)
	assert.Equal(t, "languages", ts.Category)
	assert.Contains(t, ts.Technologies, "Python")

	_, ok = Default().CategoryStack("woodworking")
	assert.False(t, ok)
	_, ok = Default().CategoryStack("")
	assert.False(t, ok)
}

func TestCategoryStack_NoMatchesEncodesEmptyList(t *testing.T) {
	sparse := &CV{Keywords: []string{"Woodworking"}}
	ts, ok := sparse.CategoryStack("ai")
	require.True(t, ok)

	b, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.JSONEq(t, `{"category":"ai","technologies":[]}`, string(b))
}

func TestFullStack(t *testing.T) {
	fs := Default().FullStack()

	assert.Len(t, fs.Categories, len(Categories))
	assert.Equal(t, Default().Keywords, fs.All)
	assert.Contains(t, fs.Categories["cloud"], "AWS")
	assert.Contains(t, fs.Categories["databases"], "MongoDB")

	b, err := json.Marshal((&CV{}).FullStack())
	require.NoError(t, err)
	assert.JSONEq(t, `{"categories":{"languages":[],"cloud":[],"frameworks":[],"ai":[],"databases":[]},"all":[]}`, string(b))
}

func TestSearch_MatchesContainQuery(t *testing.T) {
	var words []string
	for _, e := range Default().Experience {
		for _, h := range e.Highlights {
			words = append(words, strings.Fields(h)...)
		}
	}

	rapid.Check(t, func(t *rapid.T) {
		q := rapid.OneOf(
			rapid.SampledFrom(words),
			rapid.StringMatching(`[a-z]{1,3}`),
		).Draw(t, "query")

		res := Default().Search(q, nil)
		seen := map[string]bool{}
		for _, m := range res.Matches {
			assert.NotEmpty(t, m.Content, "section %s has empty content", m.Section)
			assert.Contains(t, strings.ToLower(m.Content), strings.ToLower(q), "section %s", m.Section)
			assert.False(t, seen[m.Section], "duplicate section %s", m.Section)
			seen[m.Section] = true
		}
	})
}

func TestSearch_Deterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		q := rapid.String().Draw(t, "query")
		assert.Equal(t, Default().Search(q, nil), Default().Search(q, nil))
	})
}
