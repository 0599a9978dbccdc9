package sim

import "github.com/tumbleworld/core/world"

// walkCycle visits every path reachable from root exactly once. Paths
// form a cycle (the world's invariant guarantees following PI from any
// reachable path eventually returns to it), so rather than keeping a
// visited set this locates a node on the cycle with Floyd's
// tortoise-and-hare technique — slow advances one link per step, fast
// advances two, and they are guaranteed to meet somewhere on the cycle
// — then walks forward from that meeting point exactly once around.
func walkCycle(w *world.World, root int, visit func(int)) {
	if root == world.None {
		return
	}

	slow, fast := root, root
	for {
		slow = w.Paths[slow].PI
		fast = w.Paths[w.Paths[fast].PI].PI
		if slow == fast {
			break
		}
	}

	cur := slow
	for {
		visit(cur)
		cur = w.Paths[cur].PI
		if cur == slow {
			break
		}
	}
}
