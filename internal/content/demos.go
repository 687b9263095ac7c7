package content

import "github.com/naka-gawa/devfolio/internal/domain"

// The rate limiter below is sample code shown on the page; it is never run.
var demos = []domain.CodeDemo{
	{
		ID:          "hook",
		Title:       "Custom React Hook",
		Description: "A reusable useDebounce hook for optimizing search inputs",
		Language:    "TypeScript",
		Code: `function useDebounce<T>(value: T, delay: number): T {
  const [debouncedValue, setDebouncedValue] = useState(value);

  useEffect(() => {
    const timer = setTimeout(() => {
      setDebouncedValue(value);
    }, delay);

    return () => clearTimeout(timer);
  }, [value, delay]);

  return debouncedValue;
}

// Usage
const [search, setSearch] = useState("");
const debouncedSearch = useDebounce(search, 300);

useEffect(() => {
  fetchResults(debouncedSearch);
}, [debouncedSearch]);`,
		Output: `// Input: "react hooks" (typed quickly)
// After 300ms of no typing:
// fetchResults("react hooks") is called once
// instead of calling for each keystroke`,
	},
	{
		ID:          "api",
		Title:       "Express Middleware",
		Description: "Rate limiting middleware with sliding window algorithm",
		Language:    "TypeScript",
		Code: `const rateLimit = (
  windowMs: number,
  maxRequests: number
) => {
  const requests = new Map<string, number[]>();

  return (req: Request, res: Response, next: Next) => {
    const key = req.ip || "unknown";
    const now = Date.now();
    const windowStart = now - windowMs;

    const timestamps = (requests.get(key) || [])
      .filter(t => t > windowStart);

    if (timestamps.length >= maxRequests) {
      return res.status(429).json({
        error: "Too many requests",
        retryAfter: Math.ceil(windowMs / 1000)
      });
    }

    timestamps.push(now);
    requests.set(key, timestamps);
    next();
  };
};

app.use("/api", rateLimit(60000, 100));`,
		Output: `// Request 1-100: 200 OK
// Request 101:
{
  "error": "Too many requests",
  "retryAfter": 60
}`,
	},
	{
		ID:          "algo",
		Title:       "Trie Data Structure",
		Description: "Efficient prefix search implementation for autocomplete",
		Language:    "TypeScript",
		Code: `class TrieNode {
  children = new Map<string, TrieNode>();
  isEnd = false;
  word = "";
}

class Trie {
  root = new TrieNode();

  insert(word: string) {
    let node = this.root;
    for (const char of word) {
      if (!node.children.has(char)) {
        node.children.set(char, new TrieNode());
      }
      node = node.children.get(char)!;
    }
    node.isEnd = true;
    node.word = word;
  }

  autocomplete(prefix: string, limit = 5) {
    let node = this.root;
    for (const char of prefix) {
      if (!node.children.has(char)) return [];
      node = node.children.get(char)!;
    }
    return this.collect(node, [], limit);
  }

  private collect(
    node: TrieNode, results: string[], limit: number
  ): string[] {
    if (results.length >= limit) return results;
    if (node.isEnd) results.push(node.word);
    for (const child of node.children.values()) {
      this.collect(child, results, limit);
    }
    return results;
  }
}`,
		Output: `const trie = new Trie();
["react", "redux", "relay", "recoil", "remix"]
  .forEach(w => trie.insert(w));

trie.autocomplete("re")
// ["react", "recoil", "redux", "relay", "remix"]

trie.autocomplete("rec")
// ["recoil"]`,
	},
}

// Demos returns the code demos in display order.
func Demos() []domain.CodeDemo {
	return append([]domain.CodeDemo(nil), demos...)
}
