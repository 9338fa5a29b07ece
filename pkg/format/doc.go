// Package format 提供格式串编译与逐行输出相关的子包。
//
// 子包列表：
//   - xformat: printf 风格格式串编译器，产出不可变的 Program
//   - xrender: 把 Program 与一组 Cycle 按行同步推进并写出，支持并发渲染
//
// 设计原则：
//   - 所有错误在写出第一行之前检出
//   - 每一行只取决于行号，渲染无共享可变状态
package format
