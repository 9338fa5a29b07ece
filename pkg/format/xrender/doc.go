// Package xrender 把编译后的格式串与一组地址循环按行同步推进并写出。
//
// 总行数为所有 Cycle 的 Count 最大值（没有指令时为 1）。第 r 行中，
// 第 k 个指令取第 k 个 Cycle 的第 r mod Count 个元素：
//
//	r, err := xrender.Prepare("%m %i", []string{"aa:bb:cc:dd:ee:00+2", "10.0.0.1"})
//	if err != nil {
//	    return err // 解析阶段的任何错误都在写出之前返回
//	}
//	err = r.Write(ctx, os.Stdout)
//	// aa:bb:cc:dd:ee:00 10.0.0.1
//	// aa:bb:cc:dd:ee:01 10.0.0.1
//	// aa:bb:cc:dd:ee:02 10.0.0.1
//
// 每一行只取决于行号，[Renderer.WriteParallel] 利用这一点把行分块并发渲染，
// 输出顺序与 [Renderer.Write] 完全一致。
package xrender
