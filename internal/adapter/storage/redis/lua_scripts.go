package redis

import "github.com/redis/go-redis/v9"

// slidingWindowScript performs the read-prune-append cycle of the rate
// window atomically. Timestamps live in a sorted set scored by their unix
// time in milliseconds; pruning is a range removal against the trailing
// window.
//
// KEYS:
// - KEYS[1]: the window key (ex: "rate_limit:ip:<hash>")
//
// ARGV:
// - ARGV[1]: now, unix milliseconds
// - ARGV[2]: window length in milliseconds
// - ARGV[3]: limit, maximum requests per window
// - ARGV[4]: unique member for this request
//
// Return: [allowed, count]
// - allowed: 1 if the request was recorded, 0 if the window was full
// - count: requests inside the window after the call
var slidingWindowScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
local member = ARGV[4]

-- Prune entries that fell out of the trailing window
redis.call('ZREMRANGEBYSCORE', key, 0, now - window)

local count = redis.call('ZCARD', key)
if count >= limit then
    return {0, count}
end

-- Record this request and keep the key from outliving the window
redis.call('ZADD', key, now, member)
redis.call('PEXPIRE', key, window)

return {1, count + 1}
`)
