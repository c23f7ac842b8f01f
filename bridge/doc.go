// Package bridge implements the Bridge structural pattern: an abstraction
// and its implementation evolve independently, connected only by a
// capability reference.
//
// What:
//
//   - TV: the implementor capability — On, Off, SetChannel.
//   - SonyTV, SamsungTV: concrete implementors.
//   - RemoteControl: the abstraction; it drives any TV through the bridge.
//   - AdvancedRemoteControl: a refined abstraction adding SetFavoriteChannel
//     without touching any TV.
//
// Why:
//   - Avoid the remotes × televisions class explosion
//   - Swap the device behind a remote at construction time
//   - Extend the remote side and the device side independently
//
// The TV reference is shared read-only: the same TV may sit behind several
// remotes at once.
package bridge
