package cache

import (
	"testing"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"max.ks1230/expense-tracker/internal/clients/cache/mock"
)

func Test_OnFormatKey_ShouldBeValidMemcacheKey(t *testing.T) {
	key := formatKey("summary:2024-03")

	assert.Equal(t, "expense-tracker:summary:2024-03", key)
	assert.LessOrEqual(t, len(key), 250)
	assert.NotContains(t, key, " ")
}

func Test_OnCacheSummary_ShouldSetPrefixedKeyWithTTL(t *testing.T) {
	m := minimock.NewController(t)
	client := mock.NewMemcacheClientMock(m)
	client.SetMock.
		Expect(&memcache.Item{
			Key:        "expense-tracker:summary:2024-03",
			Value:      []byte(`{"total_expenses":"1"}`),
			Expiration: ttlSeconds,
		}).
		Return(nil)

	mc := newMemcacheClient(client)
	assert.NoError(m, mc.CacheSummary("summary:2024-03", []byte(`{"total_expenses":"1"}`)))
}

func Test_OnGetSummary_ShouldReturnValueOrMiss(t *testing.T) {
	m := minimock.NewController(t)
	client := mock.NewMemcacheClientMock(m)
	client.GetMock.
		When("expense-tracker:summary:2024-03").
		Then(&memcache.Item{Value: []byte("cached")}, nil)
	client.GetMock.
		When("expense-tracker:summary:2024").
		Then(nil, memcache.ErrCacheMiss)

	mc := newMemcacheClient(client)

	data, err := mc.GetSummary("summary:2024-03")
	assert.NoError(m, err)
	assert.Equal(m, []byte("cached"), data)

	data, err = mc.GetSummary("summary:2024")
	assert.True(m, errors.Is(err, memcache.ErrCacheMiss))
	assert.Nil(m, data)
}

func Test_OnInvalidateSummaries_ShouldIgnoreMisses(t *testing.T) {
	m := minimock.NewController(t)
	client := mock.NewMemcacheClientMock(m)
	client.DeleteMock.
		When("expense-tracker:summary:2024-03").
		Then(memcache.ErrCacheMiss)
	client.DeleteMock.
		When("expense-tracker:summary:2024").
		Then(nil)

	mc := newMemcacheClient(client)
	assert.NoError(m, mc.InvalidateSummaries([]string{"summary:2024-03", "summary:2024"}))
}

func Test_OnInvalidateSummaries_ServerError_ShouldFail(t *testing.T) {
	m := minimock.NewController(t)
	client := mock.NewMemcacheClientMock(m)
	client.DeleteMock.
		Expect("expense-tracker:summary:2024-03").
		Return(memcache.ErrServerError)

	mc := newMemcacheClient(client)
	assert.Error(m, mc.InvalidateSummaries([]string{"summary:2024-03"}))
}
